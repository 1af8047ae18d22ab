// Package youtube fetches playlist snapshots from the YouTube Data API.
// The credential is supplied by configuration or environment; there is
// no default.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hub/internal/storage"
)

var (
	// ErrInvalidURL is returned when no playlist id can be extracted
	// from the given URL.
	ErrInvalidURL = errors.New("no playlist id in url")

	// ErrPlaylistNotFound is returned when the provider has no playlist
	// for the requested id.
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrMissingAPIKey is returned when no credential has been
	// configured.
	ErrMissingAPIKey = errors.New("youtube api key not configured (set youtube.api_key in config or YOUTUBE_API_KEY)")
)

// APIError carries a provider-reported error message through unchanged.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("youtube api error: %s", e.Message)
	}
	return fmt.Sprintf("youtube api error: status %d", e.StatusCode)
}

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"
	pageSize       = 50
)

// Client talks to the playlist-data provider.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a provider client with the given credential. The
// credential is checked lazily, on the first fetch.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExtractPlaylistID pulls the `list` query parameter out of a playlist
// URL. A bare playlist id is also accepted.
func ExtractPlaylistID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidURL
	}

	if u, err := url.Parse(raw); err == nil {
		if id := u.Query().Get("list"); id != "" {
			return id, nil
		}
	}

	// Accept a raw id pasted without the URL around it.
	if !strings.ContainsAny(raw, "/?&=:") {
		return raw, nil
	}

	return "", ErrInvalidURL
}

// FetchPlaylist performs the two-stage fetch: playlist metadata, then
// every item page. Items titled "Private video" or "Deleted video" are
// dropped. On any failure nothing is returned; the caller persists the
// snapshot only on success.
func (c *Client) FetchPlaylist(ctx context.Context, id string) (*storage.Playlist, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	meta, err := c.fetchMetadata(ctx, id)
	if err != nil {
		return nil, err
	}

	videos, err := c.fetchItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return &storage.Playlist{
		ID:        id,
		Title:     meta.Title,
		Thumbnail: meta.Thumbnail,
		Channel:   meta.Channel,
		Videos:    videos,
	}, nil
}

type playlistMeta struct {
	Title     string
	Thumbnail string
	Channel   string
}

type apiSnippet struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
	Thumbnails   struct {
		Medium struct {
			URL string `json:"url"`
		} `json:"medium"`
		Default struct {
			URL string `json:"url"`
		} `json:"default"`
	} `json:"thumbnails"`
	VideoOwnerChannelTitle string `json:"videoOwnerChannelTitle"`
	ResourceID             struct {
		VideoID string `json:"videoId"`
	} `json:"resourceId"`
}

type apiListResponse struct {
	Items []struct {
		Snippet apiSnippet `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

func (c *Client) fetchMetadata(ctx context.Context, id string) (*playlistMeta, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("id", id)
	q.Set("key", c.apiKey)

	var resp apiListResponse
	if err := c.getJSON(ctx, "/playlists", q, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, ErrPlaylistNotFound
	}

	sn := resp.Items[0].Snippet
	return &playlistMeta{
		Title:     sn.Title,
		Thumbnail: thumbnailURL(sn),
		Channel:   sn.ChannelTitle,
	}, nil
}

func (c *Client) fetchItems(ctx context.Context, id string) ([]storage.Video, error) {
	videos := []storage.Video{}
	pageToken := ""

	for {
		q := url.Values{}
		q.Set("part", "snippet")
		q.Set("playlistId", id)
		q.Set("maxResults", fmt.Sprintf("%d", pageSize))
		q.Set("key", c.apiKey)
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var resp apiListResponse
		if err := c.getJSON(ctx, "/playlistItems", q, &resp); err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			sn := item.Snippet
			if sn.Title == "Private video" || sn.Title == "Deleted video" {
				continue
			}
			channel := sn.VideoOwnerChannelTitle
			if channel == "" {
				channel = sn.ChannelTitle
			}
			videos = append(videos, storage.Video{
				ID:           sn.ResourceID.VideoID,
				Title:        sn.Title,
				Thumbnail:    thumbnailURL(sn),
				ChannelTitle: channel,
			})
		}

		if resp.NextPageToken == "" {
			return videos, nil
		}
		pageToken = resp.NextPageToken
	}
}

func thumbnailURL(sn apiSnippet) string {
	if sn.Thumbnails.Medium.URL != "" {
		return sn.Thumbnails.Medium.URL
	}
	return sn.Thumbnails.Default.URL
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.Error.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
