package reports

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"hub/internal/storage"
)

func seedStore(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	store.SetNowFunc(func() time.Time { return fixed })

	habit, err := store.AddHabit("Meditate", storage.PriorityHigh, 4, "default")
	if err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	if err := store.ToggleHabitDay(habit.ID, 0); err != nil {
		t.Fatalf("ToggleHabitDay() error = %v", err)
	}

	if _, err := store.AddTask("Overdue thing", "2026-08-29", storage.PriorityHigh); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if _, err := store.AddTask("Due today", "2026-08-30", storage.PriorityMedium); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	done, err := store.AddTask("Finished", "2026-08-28", storage.PriorityLow)
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if err := store.ToggleTask(done.ID); err != nil {
		t.Fatalf("ToggleTask() error = %v", err)
	}

	if _, err := store.RecordWorkSession(25); err != nil {
		t.Fatalf("RecordWorkSession() error = %v", err)
	}

	if err := store.AddPlaylist(storage.Playlist{
		ID:    "PL123",
		Title: "Go Tutorials",
		Videos: []storage.Video{
			{ID: "v1", Completed: true},
			{ID: "v2"},
		},
	}); err != nil {
		t.Fatalf("AddPlaylist() error = %v", err)
	}

	return store
}

func TestGenerate(t *testing.T) {
	store := seedStore(t)
	gen := NewGenerator(store)

	summary, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if summary.Tasks.Total != 3 || summary.Tasks.Completed != 1 || summary.Tasks.Pending != 2 {
		t.Errorf("tasks = %+v, want 3/1/2", summary.Tasks)
	}
	if summary.Tasks.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1 (completed task excluded)", summary.Tasks.Overdue)
	}
	if len(summary.Tasks.DueToday) != 1 || summary.Tasks.DueToday[0] != "Due today" {
		t.Errorf("DueToday = %v", summary.Tasks.DueToday)
	}

	if summary.Habits.Total != 1 || summary.Habits.WithProgress != 1 || summary.Habits.FullyComplete != 0 {
		t.Errorf("habits = %+v", summary.Habits)
	}
	if summary.Habits.CompletionRate != 0.25 {
		t.Errorf("CompletionRate = %v, want 0.25", summary.Habits.CompletionRate)
	}

	if summary.Pomodoro.SessionsToday != 1 || summary.Pomodoro.FocusMinutes != 25 {
		t.Errorf("pomodoro = %+v", summary.Pomodoro)
	}

	if len(summary.Playlists) != 1 || summary.Playlists[0].Watched != 1 || summary.Playlists[0].Progress != 0.5 {
		t.Errorf("playlists = %+v", summary.Playlists)
	}
}

func TestFormatMarkdown(t *testing.T) {
	store := seedStore(t)
	summary, err := NewGenerator(store).Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	md := FormatMarkdown(summary)

	for _, want := range []string{
		"## Tasks",
		"Total: 3 (1 done, 2 pending)",
		"Overdue: 1",
		"Due today",
		"Meditate: 1/4 days",
		"Sessions today: 1",
		"Go Tutorials: 1/2 watched",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	store := seedStore(t)
	summary, err := NewGenerator(store).Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := FormatJSON(summary)
	if err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}

	var parsed Summary
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Tasks.Total != 3 {
		t.Errorf("round-tripped Tasks.Total = %d, want 3", parsed.Tasks.Total)
	}
}
