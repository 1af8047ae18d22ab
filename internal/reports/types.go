// Package reports provides summary report generation for the hub app.
// Reports aggregate data from habits, tasks, pomodoro stats, and playlists.
package reports

import "time"

// Summary contains an aggregated snapshot of every tracker.
type Summary struct {
	Date        time.Time       `json:"date"`
	Tasks       TaskSection     `json:"tasks"`
	Habits      HabitSection    `json:"habits"`
	Pomodoro    PomodoroSection `json:"pomodoro"`
	Playlists   []PlaylistRow   `json:"playlists"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// TaskSection contains task statistics.
type TaskSection struct {
	Total     int      `json:"total"`
	Completed int      `json:"completed"`
	Pending   int      `json:"pending"`
	Overdue   int      `json:"overdue"`
	DueToday  []string `json:"due_today"`
}

// HabitSection contains habit statistics.
type HabitSection struct {
	Habits         []HabitRow `json:"habits"`
	Total          int        `json:"total"`
	WithProgress   int        `json:"with_progress"`
	FullyComplete  int        `json:"fully_complete"`
	CompletionRate float64    `json:"completion_rate"`
}

// HabitRow represents one habit's progress.
type HabitRow struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CompletedDays int     `json:"completed_days"`
	TotalDays     int     `json:"total_days"`
	Rate          float64 `json:"rate"`
}

// PomodoroSection contains focus statistics.
type PomodoroSection struct {
	SessionsToday int `json:"sessions_today"`
	FocusMinutes  int `json:"focus_minutes"`
	CurrentStreak int `json:"current_streak"`
}

// PlaylistRow represents one playlist's watch progress.
type PlaylistRow struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Watched  int     `json:"watched"`
	Total    int     `json:"total"`
	Progress float64 `json:"progress"`
}
