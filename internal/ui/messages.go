// Package ui provides terminal user interface components for the hub app.
// This file defines message types for async I/O operations using the Bubble Tea
// command pattern. All storage operations should return these messages to keep
// the event loop non-blocking.
package ui

import (
	"hub/internal/storage"
)

// =============================================================================
// Habit Messages
// =============================================================================

// habitsLoadedMsg is sent when habits are loaded from storage.
type habitsLoadedMsg struct {
	store *storage.HabitStore
	err   error
}

// habitAddedMsg is sent when a new habit is created.
type habitAddedMsg struct {
	habit *storage.Habit
	err   error
}

// habitToggledMsg is sent when a habit day is toggled.
type habitToggledMsg struct {
	id  string
	day int
	err error
}

// habitUpdatedMsg is sent when a habit is edited.
type habitUpdatedMsg struct {
	id  string
	err error
}

// habitResetMsg is sent when a habit's progress is cleared.
type habitResetMsg struct {
	id  string
	err error
}

// habitDeletedMsg is sent when a habit is removed.
type habitDeletedMsg struct {
	id  string
	err error
}

// =============================================================================
// Task Messages
// =============================================================================

// tasksLoadedMsg is sent when tasks are loaded from storage.
type tasksLoadedMsg struct {
	store *storage.TaskStore
	err   error
}

// taskAddedMsg is sent when a new task is created.
type taskAddedMsg struct {
	task *storage.Task
	err  error
}

// taskToggledMsg is sent when a task's completion is flipped.
type taskToggledMsg struct {
	id  string
	err error
}

// taskUpdatedMsg is sent when a task is edited.
type taskUpdatedMsg struct {
	id  string
	err error
}

// taskDeletedMsg is sent when a task is removed.
type taskDeletedMsg struct {
	id  string
	err error
}

// tasksSortedMsg is sent when the persisted task order changes.
type tasksSortedMsg struct {
	criterion storage.SortCriterion
	err       error
}

// =============================================================================
// Focus Timer Messages
// =============================================================================

// pomodoroSettingsLoadedMsg is sent when timer durations are loaded.
type pomodoroSettingsLoadedMsg struct {
	settings *storage.PomodoroSettings
	err      error
}

// pomodoroSettingsSavedMsg is sent when timer durations are persisted.
type pomodoroSettingsSavedMsg struct {
	settings *storage.PomodoroSettings
	err      error
}

// pomodoroStatsLoadedMsg is sent when focus statistics are loaded.
// Loading also applies the daily rollover, so the stats are always current.
type pomodoroStatsLoadedMsg struct {
	stats *storage.PomodoroStats
	err   error
}

// sessionRecordedMsg is sent after a completed work session is persisted.
type sessionRecordedMsg struct {
	stats *storage.PomodoroStats
	err   error
}

// =============================================================================
// Playlist Messages
// =============================================================================

// playlistsLoadedMsg is sent when playlists are loaded from storage.
type playlistsLoadedMsg struct {
	store *storage.PlaylistStore
	err   error
}

// playlistImportedMsg is sent when a playlist import finishes (or fails).
type playlistImportedMsg struct {
	playlist *storage.Playlist
	err      error
}

// videoToggledMsg is sent when a video's watched flag is flipped.
type videoToggledMsg struct {
	playlistID string
	videoID    string
	err        error
}

// playlistExpandedMsg is sent when a playlist is expanded or collapsed.
type playlistExpandedMsg struct {
	playlistID string
	err        error
}

// playlistDeletedMsg is sent when a playlist is removed.
type playlistDeletedMsg struct {
	playlistID string
	err        error
}
