// Package ui provides terminal user interface components for the hub app.
package ui

import (
	"fmt"
	"strings"

	"hub/internal/config"
	"hub/internal/storage"
	"hub/internal/youtube"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// playlistRow addresses one visible line in the playlist tree: either a
// playlist header (video == -1) or a video of an expanded playlist.
type playlistRow struct {
	playlist int
	video    int
}

// PlaylistsPane handles the playlist tracker display and interactions.
type PlaylistsPane struct {
	playlistStore *storage.PlaylistStore
	cursor        int
	focused       bool
	width         int
	height        int
	adding        bool
	importing     bool
	input         textinput.Model
	storage       *storage.Storage
	client        *youtube.Client
	styles        *Styles

	// Key bindings
	keys      PlaylistKeyMap
	inputKeys InputKeyMap
}

// NewPlaylistsPane creates a new playlists pane.
func NewPlaylistsPane(store *storage.Storage, client *youtube.Client, styles *Styles) *PlaylistsPane {
	return NewPlaylistsPaneWithKeys(store, client, styles, &config.KeysConfig{})
}

// NewPlaylistsPaneWithKeys creates a new playlists pane with custom key bindings.
func NewPlaylistsPaneWithKeys(store *storage.Storage, client *youtube.Client, styles *Styles, keyCfg *config.KeysConfig) *PlaylistsPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "Playlist URL or ID"
	ti.CharLimit = 300
	ti.Width = 40

	return &PlaylistsPane{
		playlistStore: &storage.PlaylistStore{},
		cursor:        0,
		focused:       false,
		input:         ti,
		storage:       store,
		client:        client,
		styles:        styles,
		keys:          NewPlaylistKeyMap(keyCfg),
		inputKeys:     NewInputKeyMap(keyCfg),
	}
}

// LoadPlaylistsCmd returns a command that loads playlists asynchronously.
func (p *PlaylistsPane) LoadPlaylistsCmd() tea.Cmd {
	return loadPlaylistsCmd(p.storage)
}

// setPlaylistStore updates the playlist store and adjusts cursor bounds.
func (p *PlaylistsPane) setPlaylistStore(store *storage.PlaylistStore) {
	p.playlistStore = store
	rows := p.rows()
	if p.cursor >= len(rows) {
		p.cursor = max(0, len(rows)-1)
	}
}

// rows flattens the playlist tree into the visible row list.
func (p *PlaylistsPane) rows() []playlistRow {
	var rows []playlistRow
	for i := range p.playlistStore.Playlists {
		rows = append(rows, playlistRow{playlist: i, video: -1})
		if p.playlistStore.Playlists[i].Expanded {
			for v := range p.playlistStore.Playlists[i].Videos {
				rows = append(rows, playlistRow{playlist: i, video: v})
			}
		}
	}
	return rows
}

// selectedRow returns the row under the cursor, or nil.
func (p *PlaylistsPane) selectedRow() *playlistRow {
	rows := p.rows()
	if p.cursor < 0 || p.cursor >= len(rows) {
		return nil
	}
	return &rows[p.cursor]
}

// SetSize sets the pane dimensions.
func (p *PlaylistsPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-6)
}

// SetFocused sets whether this pane is focused.
func (p *PlaylistsPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *PlaylistsPane) IsFocused() bool {
	return p.focused
}

// IsAdding returns whether the import prompt is open.
func (p *PlaylistsPane) IsAdding() bool {
	return p.adding
}

// IsImporting returns whether an import is in flight.
func (p *PlaylistsPane) IsImporting() bool {
	return p.importing
}

// Update handles messages for the playlists pane.
func (p *PlaylistsPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	// Handle async messages first
	switch msg := msg.(type) {
	case playlistsLoadedMsg:
		if msg.store != nil {
			p.setPlaylistStore(msg.store)
		}
		return nil

	case playlistImportedMsg:
		p.importing = false
		if msg.err == nil {
			return p.LoadPlaylistsCmd()
		}
		return nil

	case videoToggledMsg, playlistExpandedMsg, playlistDeletedMsg:
		return p.LoadPlaylistsCmd()
	}

	// Import URL prompt
	if p.adding {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, p.inputKeys.Confirm):
				raw := strings.TrimSpace(p.input.Value())
				p.adding = false
				p.input.Reset()
				if raw != "" {
					p.importing = true
					return importPlaylistCmd(p.storage, p.client, raw)
				}
				return nil

			case key.Matches(msg, p.inputKeys.Cancel):
				p.adding = false
				p.input.Reset()
				return nil
			}
		}

		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	// Normal mode
	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		rows := p.rows()
		switch {
		case key.Matches(msg, p.keys.Down):
			if len(rows) > 0 {
				p.cursor = min(p.cursor+1, len(rows)-1)
			}

		case key.Matches(msg, p.keys.Up):
			if len(rows) > 0 {
				p.cursor = max(p.cursor-1, 0)
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			if len(rows) > 0 {
				p.cursor = len(rows) - 1
			}

		case key.Matches(msg, p.keys.Import):
			// One import at a time.
			if p.importing {
				return nil
			}
			p.adding = true
			p.input.Focus()
			return textinput.Blink

		case key.Matches(msg, p.keys.Toggle):
			if row := p.selectedRow(); row != nil {
				playlist := &p.playlistStore.Playlists[row.playlist]
				if row.video < 0 {
					return toggleExpandedCmd(p.storage, playlist.ID)
				}
				return toggleVideoCmd(p.storage, playlist.ID, playlist.Videos[row.video].ID)
			}

		case key.Matches(msg, p.keys.Delete):
			if row := p.selectedRow(); row != nil {
				return deletePlaylistCmd(p.storage, p.playlistStore.Playlists[row.playlist].ID)
			}
		}
	}

	return nil
}

// View renders the playlists pane.
func (p *PlaylistsPane) View() string {
	var b strings.Builder

	title := p.styles.PaneTitleStyle.Render("PLAYLISTS")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	rows := p.rows()
	if len(rows) == 0 && !p.adding {
		b.WriteString("\n")
		b.WriteString(p.styles.StatLabelStyle.Render("  No playlists yet."))
		b.WriteString("\n")
		b.WriteString(p.styles.StatLabelStyle.Render("  Press 'a' to import one."))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")

		maxRows := p.height - 7
		if maxRows < 3 {
			maxRows = 5
		}
		startIdx := 0
		if p.cursor >= maxRows {
			startIdx = p.cursor - maxRows + 1
		}

		for i, row := range rows {
			if i < startIdx || i >= startIdx+maxRows {
				continue
			}
			b.WriteString(p.renderRow(row, i == p.cursor && p.focused && !p.adding))
			b.WriteString("\n")
		}
	}

	if p.importing {
		b.WriteString("\n")
		b.WriteString("  " + p.styles.StatusStyle.Render("Importing…"))
		b.WriteString("\n")
	}

	if p.adding {
		b.WriteString("\n")
		prompt := p.styles.InputPromptStyle.Render("URL: ")
		b.WriteString("  " + prompt + p.input.View())
		b.WriteString("\n")
	}

	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// renderRow renders one playlist header or video line.
func (p *PlaylistsPane) renderRow(row playlistRow, selected bool) string {
	playlist := &p.playlistStore.Playlists[row.playlist]

	var line string
	if row.video < 0 {
		marker := "▸"
		if playlist.Expanded {
			marker = "▾"
		}
		title := runewidth.Truncate(playlist.Title, max(10, p.width-20), "..")
		line = fmt.Sprintf(" %s %s  %d/%d", marker, p.styles.PlaylistTitleStyle.Render(title),
			playlist.WatchedCount(), len(playlist.Videos))
	} else {
		video := &playlist.Videos[row.video]
		icon := p.styles.VideoUnwatchedIcon
		videoTitle := runewidth.Truncate(video.Title, max(10, p.width-16), "..")
		if video.Completed {
			icon = p.styles.VideoWatchedIcon
			videoTitle = p.styles.TaskDoneStyle.Render(videoTitle)
		}
		line = fmt.Sprintf("   %s %s", icon, videoTitle)
	}

	if selected {
		return p.styles.TaskSelectedStyle.Render(line)
	}
	return line
}

// Stats returns playlist statistics for the title bar.
func (p *PlaylistsPane) Stats() (watched, total int) {
	for i := range p.playlistStore.Playlists {
		watched += p.playlistStore.Playlists[i].WatchedCount()
		total += len(p.playlistStore.Playlists[i].Videos)
	}
	return watched, total
}
