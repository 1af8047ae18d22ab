package storage

import "time"

// Priority represents habit and task priority levels.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriority reports whether p is one of the three known levels.
func ValidPriority(p Priority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// priorityRank maps priorities for sorting (high=3, medium=2, low=1).
// Unknown values rank as low.
func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// DefaultHabitDays is the target length used when none (or an invalid one)
// is supplied.
const DefaultHabitDays = 21

// Habit represents a recurring goal tracked over a fixed-length grid of days.
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Priority  Priority  `json:"priority"`
	Days      int       `json:"days"`
	CardColor string    `json:"card_color"`
	Progress  []bool    `json:"progress"` // invariant: len(Progress) == Days
	CreatedAt time.Time `json:"created_at"`
}

// CompletedDays returns the number of days marked done.
func (h *Habit) CompletedDays() int {
	n := 0
	for _, done := range h.Progress {
		if done {
			n++
		}
	}
	return n
}

// IsCompleted reports whether every day in the grid is marked done.
func (h *Habit) IsCompleted() bool {
	return h.Days > 0 && h.CompletedDays() == h.Days
}

// HabitStore holds all habits.
type HabitStore struct {
	Habits []Habit `json:"habits"`
}

// Task represents a single todo item. DueDate is a calendar date in
// YYYY-MM-DD form with no time component; overdue status is derived,
// never stored.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	DueDate   string    `json:"due_date"`
	Priority  Priority  `json:"priority"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskStore holds all tasks.
type TaskStore struct {
	Tasks []Task `json:"tasks"`
}

// PomodoroSettings holds the three interval durations, in minutes.
type PomodoroSettings struct {
	WorkDuration       int `json:"work_duration"`
	ShortBreakDuration int `json:"short_break_duration"`
	LongBreakDuration  int `json:"long_break_duration"`
}

// DefaultPomodoroSettings returns the classic 25/5/15 configuration.
func DefaultPomodoroSettings() PomodoroSettings {
	return PomodoroSettings{
		WorkDuration:       25,
		ShortBreakDuration: 5,
		LongBreakDuration:  15,
	}
}

// PomodoroStats accumulates daily focus statistics. SessionsToday and
// TotalFocusTime reset when LastSessionDate falls behind the current day;
// CurrentStreak only ever increments (matching the observed behavior of the
// original tracker — see DESIGN.md).
type PomodoroStats struct {
	SessionsToday   int    `json:"sessions_today"`
	TotalFocusTime  int    `json:"total_focus_time"` // minutes
	CurrentStreak   int    `json:"current_streak"`
	LastSessionDate string `json:"last_session_date"` // YYYY-MM-DD
}

// Video is a single playlist entry snapshot.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channel_title"`
	Completed    bool   `json:"completed"`
}

// Playlist is an imported playlist snapshot. Title, Thumbnail and Channel
// are copied at import time and never re-synced. Expanded is a UI concern
// but is persisted with the rest of the record.
type Playlist struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Thumbnail string  `json:"thumbnail"`
	Channel   string  `json:"channel"`
	Videos    []Video `json:"videos"`
	Expanded  bool    `json:"expanded"`
}

// Progress returns the watched fraction in [0, 1]. Empty playlists report 0.
func (p *Playlist) Progress() float64 {
	if len(p.Videos) == 0 {
		return 0
	}
	done := 0
	for _, v := range p.Videos {
		if v.Completed {
			done++
		}
	}
	return float64(done) / float64(len(p.Videos))
}

// WatchedCount returns how many videos are marked watched.
func (p *Playlist) WatchedCount() int {
	n := 0
	for _, v := range p.Videos {
		if v.Completed {
			n++
		}
	}
	return n
}

// PlaylistStore holds all imported playlists.
type PlaylistStore struct {
	Playlists []Playlist `json:"playlists"`
}
