// Package reports provides summary report generation for the hub app.
package reports

import (
	"fmt"
	"strings"
	"time"

	"hub/internal/storage"
)

// Generator creates reports from storage data.
type Generator struct {
	store *storage.Storage
}

// NewGenerator creates a new report generator.
func NewGenerator(store *storage.Storage) *Generator {
	return &Generator{store: store}
}

// Generate builds the current summary across all four trackers.
func (g *Generator) Generate() (*Summary, error) {
	now := g.store.Now()

	tasks, err := g.taskSection(now)
	if err != nil {
		return nil, err
	}

	habits, err := g.habitSection()
	if err != nil {
		return nil, err
	}

	pomodoro, err := g.pomodoroSection()
	if err != nil {
		return nil, err
	}

	playlists, err := g.playlistRows()
	if err != nil {
		return nil, err
	}

	return &Summary{
		Date:        now,
		Tasks:       tasks,
		Habits:      habits,
		Pomodoro:    pomodoro,
		Playlists:   playlists,
		GeneratedAt: time.Now(),
	}, nil
}

func (g *Generator) taskSection(now time.Time) (TaskSection, error) {
	taskStore, err := g.store.LoadTasks()
	if err != nil {
		return TaskSection{}, err
	}

	sum := storage.SummarizeTasks(taskStore)
	section := TaskSection{
		Total:     sum.Total,
		Completed: sum.Completed,
		Pending:   sum.Pending,
		DueToday:  []string{},
	}

	for i := range taskStore.Tasks {
		switch storage.ClassifyDue(&taskStore.Tasks[i], now) {
		case storage.DueOverdue:
			section.Overdue++
		case storage.DueToday:
			section.DueToday = append(section.DueToday, taskStore.Tasks[i].Name)
		}
	}

	return section, nil
}

func (g *Generator) habitSection() (HabitSection, error) {
	habitStore, err := g.store.LoadHabits()
	if err != nil {
		return HabitSection{}, err
	}

	sum := storage.SummarizeHabits(habitStore)
	section := HabitSection{
		Habits:        make([]HabitRow, 0, len(habitStore.Habits)),
		Total:         sum.TotalHabits,
		WithProgress:  sum.CompletedToday,
		FullyComplete: sum.CurrentStreak,
	}

	totalDays, doneDays := 0, 0
	for i := range habitStore.Habits {
		h := &habitStore.Habits[i]
		done := h.CompletedDays()
		rate := 0.0
		if h.Days > 0 {
			rate = float64(done) / float64(h.Days)
		}
		section.Habits = append(section.Habits, HabitRow{
			ID:            h.ID,
			Name:          h.Name,
			CompletedDays: done,
			TotalDays:     h.Days,
			Rate:          rate,
		})
		totalDays += h.Days
		doneDays += done
	}
	if totalDays > 0 {
		section.CompletionRate = float64(doneDays) / float64(totalDays)
	}

	return section, nil
}

func (g *Generator) pomodoroSection() (PomodoroSection, error) {
	stats, err := g.store.LoadPomodoroStats()
	if err != nil {
		return PomodoroSection{}, err
	}
	return PomodoroSection{
		SessionsToday: stats.SessionsToday,
		FocusMinutes:  stats.TotalFocusTime,
		CurrentStreak: stats.CurrentStreak,
	}, nil
}

func (g *Generator) playlistRows() ([]PlaylistRow, error) {
	playlistStore, err := g.store.LoadPlaylists()
	if err != nil {
		return nil, err
	}

	rows := make([]PlaylistRow, 0, len(playlistStore.Playlists))
	for i := range playlistStore.Playlists {
		p := &playlistStore.Playlists[i]
		rows = append(rows, PlaylistRow{
			ID:       p.ID,
			Title:    p.Title,
			Watched:  p.WatchedCount(),
			Total:    len(p.Videos),
			Progress: p.Progress(),
		})
	}
	return rows, nil
}

// FormatMarkdown renders the summary as a Markdown document.
func FormatMarkdown(s *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Summary — %s\n\n", s.Date.Format("Monday, January 2, 2006"))

	fmt.Fprintf(&b, "## Tasks\n\n")
	fmt.Fprintf(&b, "- Total: %d (%d done, %d pending)\n", s.Tasks.Total, s.Tasks.Completed, s.Tasks.Pending)
	fmt.Fprintf(&b, "- Overdue: %d\n", s.Tasks.Overdue)
	if len(s.Tasks.DueToday) > 0 {
		fmt.Fprintf(&b, "- Due today:\n")
		for _, name := range s.Tasks.DueToday {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Habits\n\n")
	if len(s.Habits.Habits) == 0 {
		b.WriteString("No habits tracked.\n")
	} else {
		for _, h := range s.Habits.Habits {
			fmt.Fprintf(&b, "- %s: %d/%d days (%.0f%%)\n", h.Name, h.CompletedDays, h.TotalDays, h.Rate*100)
		}
		fmt.Fprintf(&b, "\nOverall completion: %.0f%%\n", s.Habits.CompletionRate*100)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Focus\n\n")
	fmt.Fprintf(&b, "- Sessions today: %d\n", s.Pomodoro.SessionsToday)
	fmt.Fprintf(&b, "- Focus time: %dm\n", s.Pomodoro.FocusMinutes)
	fmt.Fprintf(&b, "- Streak: %d\n", s.Pomodoro.CurrentStreak)
	b.WriteString("\n")

	if len(s.Playlists) > 0 {
		fmt.Fprintf(&b, "## Playlists\n\n")
		for _, p := range s.Playlists {
			fmt.Fprintf(&b, "- %s: %d/%d watched (%.0f%%)\n", p.Title, p.Watched, p.Total, p.Progress*100)
		}
		b.WriteString("\n")
	}

	return b.String()
}
