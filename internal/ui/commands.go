// Package ui provides terminal user interface components for the hub app.
// This file contains tea.Cmd factories that wrap storage operations. These
// commands run I/O operations asynchronously to keep the Bubble Tea event
// loop responsive. Each command returns a corresponding message type defined
// in messages.go.
package ui

import (
	"context"
	"time"

	"hub/internal/storage"
	"hub/internal/youtube"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// Habit Commands
// =============================================================================

// loadHabitsCmd returns a command that loads all habits from storage.
func loadHabitsCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		habitStore, err := store.LoadHabits()
		return habitsLoadedMsg{store: habitStore, err: err}
	}
}

// addHabitCmd returns a command that creates a new habit.
func addHabitCmd(store *storage.Storage, name string, priority storage.Priority, days int, cardColor string) tea.Cmd {
	return func() tea.Msg {
		habit, err := store.AddHabit(name, priority, days, cardColor)
		return habitAddedMsg{habit: habit, err: err}
	}
}

// toggleHabitDayCmd returns a command that flips one day of a habit's grid.
func toggleHabitDayCmd(store *storage.Storage, id string, day int) tea.Cmd {
	return func() tea.Msg {
		err := store.ToggleHabitDay(id, day)
		return habitToggledMsg{id: id, day: day, err: err}
	}
}

// updateHabitCmd returns a command that edits a habit in place.
func updateHabitCmd(store *storage.Storage, id, name string, priority storage.Priority, days int, cardColor string) tea.Cmd {
	return func() tea.Msg {
		err := store.UpdateHabit(id, name, priority, days, cardColor)
		return habitUpdatedMsg{id: id, err: err}
	}
}

// resetHabitCmd returns a command that clears a habit's progress.
func resetHabitCmd(store *storage.Storage, id string) tea.Cmd {
	return func() tea.Msg {
		err := store.ResetHabit(id)
		return habitResetMsg{id: id, err: err}
	}
}

// deleteHabitCmd returns a command that removes a habit.
func deleteHabitCmd(store *storage.Storage, id string) tea.Cmd {
	return func() tea.Msg {
		err := store.DeleteHabit(id)
		return habitDeletedMsg{id: id, err: err}
	}
}

// =============================================================================
// Task Commands
// =============================================================================

// loadTasksCmd returns a command that loads all tasks from storage.
func loadTasksCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		taskStore, err := store.LoadTasks()
		return tasksLoadedMsg{store: taskStore, err: err}
	}
}

// addTaskCmd returns a command that creates a new task.
func addTaskCmd(store *storage.Storage, name, dueDate string, priority storage.Priority) tea.Cmd {
	return func() tea.Msg {
		task, err := store.AddTask(name, dueDate, priority)
		return taskAddedMsg{task: task, err: err}
	}
}

// toggleTaskCmd returns a command that flips a task's completion.
func toggleTaskCmd(store *storage.Storage, id string) tea.Cmd {
	return func() tea.Msg {
		err := store.ToggleTask(id)
		return taskToggledMsg{id: id, err: err}
	}
}

// updateTaskCmd returns a command that edits a task in place.
func updateTaskCmd(store *storage.Storage, id, name, dueDate string, priority storage.Priority) tea.Cmd {
	return func() tea.Msg {
		err := store.UpdateTask(id, name, dueDate, priority)
		return taskUpdatedMsg{id: id, err: err}
	}
}

// deleteTaskCmd returns a command that removes a task.
func deleteTaskCmd(store *storage.Storage, id string) tea.Cmd {
	return func() tea.Msg {
		err := store.DeleteTask(id)
		return taskDeletedMsg{id: id, err: err}
	}
}

// sortTasksCmd returns a command that re-sorts and persists the task list.
func sortTasksCmd(store *storage.Storage, criterion storage.SortCriterion) tea.Cmd {
	return func() tea.Msg {
		err := store.SortTasks(criterion)
		return tasksSortedMsg{criterion: criterion, err: err}
	}
}

// =============================================================================
// Focus Timer Commands
// =============================================================================

// loadPomodoroSettingsCmd returns a command that loads timer durations.
func loadPomodoroSettingsCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		settings, err := store.LoadPomodoroSettings()
		return pomodoroSettingsLoadedMsg{settings: settings, err: err}
	}
}

// savePomodoroSettingsCmd returns a command that persists timer durations.
func savePomodoroSettingsCmd(store *storage.Storage, settings *storage.PomodoroSettings) tea.Cmd {
	return func() tea.Msg {
		err := store.SavePomodoroSettings(settings)
		return pomodoroSettingsSavedMsg{settings: settings, err: err}
	}
}

// loadPomodoroStatsCmd returns a command that loads focus statistics.
func loadPomodoroStatsCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		stats, err := store.LoadPomodoroStats()
		return pomodoroStatsLoadedMsg{stats: stats, err: err}
	}
}

// recordSessionCmd returns a command that persists a completed work session.
func recordSessionCmd(store *storage.Storage, workMinutes int) tea.Cmd {
	return func() tea.Msg {
		stats, err := store.RecordWorkSession(workMinutes)
		return sessionRecordedMsg{stats: stats, err: err}
	}
}

// =============================================================================
// Playlist Commands
// =============================================================================

// importTimeout bounds the whole metadata + items fetch for one playlist.
const importTimeout = 30 * time.Second

// loadPlaylistsCmd returns a command that loads all playlists from storage.
func loadPlaylistsCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		playlistStore, err := store.LoadPlaylists()
		return playlistsLoadedMsg{store: playlistStore, err: err}
	}
}

// importPlaylistCmd returns a command that imports a playlist by URL or ID.
// Duplicates are rejected before any network traffic; a failed fetch leaves
// storage untouched.
func importPlaylistCmd(store *storage.Storage, client *youtube.Client, rawURL string) tea.Cmd {
	return func() tea.Msg {
		id, err := youtube.ExtractPlaylistID(rawURL)
		if err != nil {
			return playlistImportedMsg{err: err}
		}

		exists, err := store.HasPlaylist(id)
		if err != nil {
			return playlistImportedMsg{err: err}
		}
		if exists {
			return playlistImportedMsg{err: storage.ErrDuplicatePlaylist}
		}

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		playlist, err := client.FetchPlaylist(ctx, id)
		if err != nil {
			return playlistImportedMsg{err: err}
		}

		if err := store.AddPlaylist(*playlist); err != nil {
			return playlistImportedMsg{err: err}
		}
		return playlistImportedMsg{playlist: playlist}
	}
}

// toggleVideoCmd returns a command that flips a video's watched flag.
func toggleVideoCmd(store *storage.Storage, playlistID, videoID string) tea.Cmd {
	return func() tea.Msg {
		err := store.ToggleVideoWatched(playlistID, videoID)
		return videoToggledMsg{playlistID: playlistID, videoID: videoID, err: err}
	}
}

// toggleExpandedCmd returns a command that expands or collapses a playlist.
func toggleExpandedCmd(store *storage.Storage, playlistID string) tea.Cmd {
	return func() tea.Msg {
		err := store.TogglePlaylistExpanded(playlistID)
		return playlistExpandedMsg{playlistID: playlistID, err: err}
	}
}

// deletePlaylistCmd returns a command that removes a playlist.
func deletePlaylistCmd(store *storage.Storage, playlistID string) tea.Cmd {
	return func() tea.Msg {
		err := store.DeletePlaylist(playlistID)
		return playlistDeletedMsg{playlistID: playlistID, err: err}
	}
}
