// Package ui provides terminal user interface components for the hub app.
// This file defines key bindings using the Bubble Tea key package for
// type-safe key matching, help text generation, and user customization.
package ui

import (
	"strings"

	"hub/internal/config"

	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// Helpers
// =============================================================================

// parseKeys splits a comma-separated string into individual keys.
// If the input is empty, returns the default keys.
func parseKeys(customKeys string, defaultKeys ...string) []string {
	if customKeys == "" {
		return defaultKeys
	}
	keys := strings.Split(customKeys, ",")
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		trimmed := strings.TrimSpace(k)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// =============================================================================
// Global Keys (available in all contexts)
// =============================================================================

// GlobalKeyMap defines keys available throughout the application.
type GlobalKeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	NextTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding
}

// DefaultGlobalKeyMap returns the default global key bindings.
func DefaultGlobalKeyMap() GlobalKeyMap {
	return NewGlobalKeyMap(&config.KeysConfig{})
}

// NewGlobalKeyMap creates global key bindings from config.
func NewGlobalKeyMap(cfg *config.KeysConfig) GlobalKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Quit, "q", "ctrl+c")...),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Help, "?")...),
			key.WithHelp("?", "help"),
		),
		NextTab: key.NewBinding(
			key.WithKeys(parseKeys(cfg.NextTab, "tab")...),
			key.WithHelp("tab", "next tab"),
		),
		Tab1: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Tab1, "1")...),
			key.WithHelp("1", "habits"),
		),
		Tab2: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Tab2, "2")...),
			key.WithHelp("2", "tasks"),
		),
		Tab3: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Tab3, "3")...),
			key.WithHelp("3", "focus"),
		),
		Tab4: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Tab4, "4")...),
			key.WithHelp("4", "playlists"),
		),
	}
}

// =============================================================================
// Navigation Keys (shared by list-based panes)
// =============================================================================

// NavigationKeyMap defines keys for list navigation.
type NavigationKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Top    key.Binding
	Bottom key.Binding
}

// DefaultNavigationKeyMap returns the default navigation key bindings.
func DefaultNavigationKeyMap() NavigationKeyMap {
	return NewNavigationKeyMap(&config.KeysConfig{})
}

// NewNavigationKeyMap creates navigation key bindings from config.
func NewNavigationKeyMap(cfg *config.KeysConfig) NavigationKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return NavigationKeyMap{
		Up: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Up, "k", "up")...),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Down, "j", "down")...),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Left, "h", "left")...),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Right, "l", "right")...),
			key.WithHelp("l/→", "right"),
		),
		Top: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Top, "g")...),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Bottom, "G")...),
			key.WithHelp("G", "bottom"),
		),
	}
}

// =============================================================================
// Input Keys (shared by text input fields)
// =============================================================================

// InputKeyMap defines keys for text input mode.
type InputKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultInputKeyMap returns the default input key bindings.
func DefaultInputKeyMap() InputKeyMap {
	return NewInputKeyMap(&config.KeysConfig{})
}

// NewInputKeyMap creates input key bindings from config.
func NewInputKeyMap(cfg *config.KeysConfig) InputKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return InputKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Confirm, "enter")...),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Cancel, "esc")...),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// =============================================================================
// Habit Pane Keys
// =============================================================================

// HabitKeyMap defines keys for the habits pane.
type HabitKeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Reset  key.Binding
	NavigationKeyMap
}

// DefaultHabitKeyMap returns the default habit pane key bindings.
func DefaultHabitKeyMap() HabitKeyMap {
	return NewHabitKeyMap(&config.KeysConfig{})
}

// NewHabitKeyMap creates habit key bindings from config.
func NewHabitKeyMap(cfg *config.KeysConfig) HabitKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return HabitKeyMap{
		Add: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Add, "a")...),
			key.WithHelp("a", "add habit"),
		),
		Edit: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Edit, "e")...),
			key.WithHelp("e", "rename"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Toggle, "d", "enter", " ")...),
			key.WithHelp("space", "toggle day"),
		),
		Delete: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Delete, "x")...),
			key.WithHelp("x", "delete"),
		),
		Reset: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Reset, "r")...),
			key.WithHelp("r", "reset progress"),
		),
		NavigationKeyMap: NewNavigationKeyMap(cfg),
	}
}

// ShortHelp returns the short help for the habit pane (implements help.KeyMap).
func (k HabitKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Down}
}

// FullHelp returns the full help for the habit pane (implements help.KeyMap).
func (k HabitKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Toggle, k.Reset, k.Delete},
		{k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom},
	}
}

// =============================================================================
// Task Pane Keys
// =============================================================================

// TaskKeyMap defines keys for the task pane.
type TaskKeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Sort   key.Binding
	Filter key.Binding
	NavigationKeyMap
}

// DefaultTaskKeyMap returns the default task pane key bindings.
func DefaultTaskKeyMap() TaskKeyMap {
	return NewTaskKeyMap(&config.KeysConfig{})
}

// NewTaskKeyMap creates task key bindings from config.
func NewTaskKeyMap(cfg *config.KeysConfig) TaskKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return TaskKeyMap{
		Add: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Add, "a")...),
			key.WithHelp("a", "add task"),
		),
		Edit: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Edit, "e")...),
			key.WithHelp("e", "edit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Toggle, "d", "enter", " ")...),
			key.WithHelp("d/space", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Delete, "x")...),
			key.WithHelp("x", "delete"),
		),
		Sort: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Sort, "s")...),
			key.WithHelp("s", "sort"),
		),
		Filter: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Filter, "f")...),
			key.WithHelp("f", "filter"),
		),
		NavigationKeyMap: NewNavigationKeyMap(cfg),
	}
}

// ShortHelp returns the short help for the task pane (implements help.KeyMap).
func (k TaskKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Down}
}

// FullHelp returns the full help for the task pane (implements help.KeyMap).
func (k TaskKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Toggle, k.Delete, k.Sort, k.Filter},
		{k.Up, k.Down, k.Top, k.Bottom},
	}
}

// =============================================================================
// Pomodoro Pane Keys
// =============================================================================

// PomodoroKeyMap defines keys for the focus timer pane.
type PomodoroKeyMap struct {
	StartPause key.Binding
	SwitchMode key.Binding
	Reset      key.Binding
	Settings   key.Binding
}

// DefaultPomodoroKeyMap returns the default focus timer key bindings.
func DefaultPomodoroKeyMap() PomodoroKeyMap {
	return NewPomodoroKeyMap(&config.KeysConfig{})
}

// NewPomodoroKeyMap creates focus timer key bindings from config.
func NewPomodoroKeyMap(cfg *config.KeysConfig) PomodoroKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return PomodoroKeyMap{
		StartPause: key.NewBinding(
			key.WithKeys(parseKeys(cfg.StartPause, " ", "enter")...),
			key.WithHelp("space", "start/pause"),
		),
		SwitchMode: key.NewBinding(
			key.WithKeys(parseKeys(cfg.SwitchMode, "m")...),
			key.WithHelp("m", "switch mode"),
		),
		Reset: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Reset, "r")...),
			key.WithHelp("r", "reset"),
		),
		Settings: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Settings, "o")...),
			key.WithHelp("o", "settings"),
		),
	}
}

// ShortHelp returns the short help for the focus pane (implements help.KeyMap).
func (k PomodoroKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartPause, k.SwitchMode, k.Reset}
}

// FullHelp returns the full help for the focus pane (implements help.KeyMap).
func (k PomodoroKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartPause, k.SwitchMode, k.Reset, k.Settings},
	}
}

// =============================================================================
// Playlist Pane Keys
// =============================================================================

// PlaylistKeyMap defines keys for the playlists pane.
type PlaylistKeyMap struct {
	Import key.Binding
	Toggle key.Binding
	Delete key.Binding
	NavigationKeyMap
}

// DefaultPlaylistKeyMap returns the default playlist pane key bindings.
func DefaultPlaylistKeyMap() PlaylistKeyMap {
	return NewPlaylistKeyMap(&config.KeysConfig{})
}

// NewPlaylistKeyMap creates playlist key bindings from config.
func NewPlaylistKeyMap(cfg *config.KeysConfig) PlaylistKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return PlaylistKeyMap{
		Import: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Add, "a")...),
			key.WithHelp("a", "import playlist"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Toggle, "d", "enter", " ")...),
			key.WithHelp("space", "toggle/expand"),
		),
		Delete: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Delete, "x")...),
			key.WithHelp("x", "delete"),
		),
		NavigationKeyMap: NewNavigationKeyMap(cfg),
	}
}

// ShortHelp returns the short help for the playlist pane (implements help.KeyMap).
func (k PlaylistKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Import, k.Toggle, k.Delete, k.Down}
}

// FullHelp returns the full help for the playlist pane (implements help.KeyMap).
func (k PlaylistKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Import, k.Toggle, k.Delete},
		{k.Up, k.Down, k.Top, k.Bottom},
	}
}

// =============================================================================
// Help Overlay Keys
// =============================================================================

// HelpKeyMap defines keys for the help overlay.
type HelpKeyMap struct {
	Close key.Binding
}

// DefaultHelpKeyMap returns the default help overlay key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Close: key.NewBinding(
			key.WithKeys("?", "esc", "q", "enter", " "),
			key.WithHelp("any key", "close"),
		),
	}
}
