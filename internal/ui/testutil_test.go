package ui

import (
	"testing"
	"time"

	"hub/internal/config"
	"hub/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// setupTest prepares the test environment for deterministic rendering.
// It disables colors to ensure consistent output across environments.
func setupTest(t *testing.T) {
	t.Helper()
	// Use ASCII profile to disable all color codes in output
	lipgloss.SetColorProfile(termenv.Ascii)
}

// createTestStorage creates a Storage instance with a temporary directory.
func createTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	return store
}

// createTestStyles creates a default Styles instance for testing.
func createTestStyles() *Styles {
	return NewStylesFromTheme(&config.ThemeConfig{})
}

// freezeNow pins the storage clock to a fixed instant.
func freezeNow(t *testing.T, store *storage.Storage) time.Time {
	t.Helper()
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	store.SetNowFunc(func() time.Time { return fixed })
	return fixed
}

// drainPane runs commands synchronously, feeding resulting messages back
// into the pane until no follow-up commands remain. This executes the full
// mutate-then-reload cycle that the Bubble Tea runtime would drive.
func drainPane(t *testing.T, p pane, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				drainPane(t, p, c)
			}
			return
		}
		cmd = p.Update(msg)
	}
}

// keyMsg builds a plain rune key message.
func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// keyEnter builds an enter key message.
func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}
