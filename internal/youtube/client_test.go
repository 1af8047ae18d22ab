package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "watch url with list", url: "https://www.youtube.com/watch?v=abc&list=PL123", want: "PL123"},
		{name: "playlist url", url: "https://www.youtube.com/playlist?list=PLxyz789", want: "PLxyz789"},
		{name: "bare id", url: "PL456", want: "PL456"},
		{name: "no list param", url: "https://www.youtube.com/watch?v=abc", wantErr: true},
		{name: "empty", url: "", wantErr: true},
		{name: "whitespace", url: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPlaylistID(tt.url)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidURL) {
					t.Fatalf("ExtractPlaylistID() error = %v, want ErrInvalidURL", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractPlaylistID() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractPlaylistID() = %q, want %q", got, tt.want)
			}
		})
	}
}

// fakeAPI serves the two provider endpoints with a paginated item list.
func fakeAPI(t *testing.T, pages [][]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/playlists", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			http.Error(w, `{"error":{"message":"key missing"}}`, http.StatusForbidden)
			return
		}
		if r.URL.Query().Get("id") != "PL123" {
			fmt.Fprint(w, `{"items":[]}`)
			return
		}
		fmt.Fprint(w, `{"items":[{"snippet":{
			"title":"Go Tutorials",
			"channelTitle":"gopher-academy",
			"thumbnails":{"medium":{"url":"https://img.example/pl.jpg"}}
		}}]}`)
	})

	mux.HandleFunc("/playlistItems", func(w http.ResponseWriter, r *http.Request) {
		page := 0
		if tok := r.URL.Query().Get("pageToken"); tok != "" {
			fmt.Sscanf(tok, "page-%d", &page)
		}
		if page >= len(pages) {
			fmt.Fprint(w, `{"items":[]}`)
			return
		}

		fmt.Fprint(w, `{"items":[`)
		for i, title := range pages[page] {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"snippet":{
				"title":%q,
				"videoOwnerChannelTitle":"gopher-academy",
				"thumbnails":{"default":{"url":"https://img.example/v.jpg"}},
				"resourceId":{"videoId":"vid-%d-%d"}
			}}`, title, page, i)
		}
		fmt.Fprint(w, `]`)
		if page+1 < len(pages) {
			fmt.Fprintf(w, `,"nextPageToken":"page-%d"`, page+1)
		}
		fmt.Fprint(w, `}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchPlaylistPaginatesAndFilters(t *testing.T) {
	srv := fakeAPI(t, [][]string{
		{"Intro", "Private video", "Slices"},
		{"Deleted video", "Channels"},
	})
	client := NewClient("test-key", WithBaseURL(srv.URL))

	playlist, err := client.FetchPlaylist(context.Background(), "PL123")
	if err != nil {
		t.Fatalf("FetchPlaylist() error = %v", err)
	}

	if playlist.Title != "Go Tutorials" || playlist.Channel != "gopher-academy" {
		t.Errorf("metadata = %q / %q", playlist.Title, playlist.Channel)
	}
	if playlist.Thumbnail != "https://img.example/pl.jpg" {
		t.Errorf("thumbnail = %q", playlist.Thumbnail)
	}

	// Both pages concatenated, private/deleted entries dropped.
	wantTitles := []string{"Intro", "Slices", "Channels"}
	if len(playlist.Videos) != len(wantTitles) {
		t.Fatalf("len(videos) = %d, want %d", len(playlist.Videos), len(wantTitles))
	}
	for i, want := range wantTitles {
		if playlist.Videos[i].Title != want {
			t.Errorf("videos[%d].Title = %q, want %q", i, playlist.Videos[i].Title, want)
		}
	}
	for _, v := range playlist.Videos {
		if v.Completed {
			t.Error("imported video marked watched")
		}
	}
}

func TestFetchPlaylistNotFound(t *testing.T) {
	srv := fakeAPI(t, nil)
	client := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := client.FetchPlaylist(context.Background(), "PL999")
	if !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("FetchPlaylist(unknown) error = %v, want ErrPlaylistNotFound", err)
	}
}

func TestFetchPlaylistMissingKey(t *testing.T) {
	client := NewClient("")

	_, err := client.FetchPlaylist(context.Background(), "PL123")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("FetchPlaylist() with no key error = %v, want ErrMissingAPIKey", err)
	}
}

func TestFetchPlaylistProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"message":"quota exceeded"}}`)
	}))
	t.Cleanup(srv.Close)
	client := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := client.FetchPlaylist(context.Background(), "PL123")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("FetchPlaylist() error = %v, want *APIError", err)
	}
	if apiErr.Message != "quota exceeded" {
		t.Errorf("APIError.Message = %q, want provider message passed through", apiErr.Message)
	}
}
