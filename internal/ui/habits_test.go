package ui

import (
	"strings"
	"testing"

	"hub/internal/storage"
)

func newHabitsPane(t *testing.T, store *storage.Storage) *HabitsPane {
	t.Helper()
	pane := NewHabitsPane(store, createTestStyles())
	pane.SetSize(60, 24)
	pane.SetFocused(true)
	habitStore, err := store.LoadHabits()
	if err != nil {
		t.Fatalf("LoadHabits() error = %v", err)
	}
	pane.setHabitStore(habitStore)
	return pane
}

func TestHabitsPaneView_Empty(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	pane := newHabitsPane(t, store)

	output := pane.View()
	if !strings.Contains(output, "No habits yet") {
		t.Errorf("empty view missing placeholder:\n%s", output)
	}
}

func TestHabitsPaneView_WithHabits(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	habit, err := store.AddHabit("Exercise", storage.PriorityHigh, 4, "default")
	if err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	if _, err := store.AddHabit("Reading", storage.PriorityLow, 21, "default"); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	if err := store.ToggleHabitDay(habit.ID, 0); err != nil {
		t.Fatalf("ToggleHabitDay() error = %v", err)
	}

	pane := newHabitsPane(t, store)

	output := pane.View()
	if !strings.Contains(output, "Exercise") || !strings.Contains(output, "Reading") {
		t.Errorf("view missing habit names:\n%s", output)
	}
	if !strings.Contains(output, "1/4") {
		t.Errorf("view missing progress count 1/4:\n%s", output)
	}
	if !strings.Contains(output, "Active today: 1/2") {
		t.Errorf("view missing summary:\n%s", output)
	}
}

func TestHabitsPaneToggleDay(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	if _, err := store.AddHabit("Exercise", storage.PriorityLow, 4, "default"); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	pane := newHabitsPane(t, store)

	// Move the day cursor right, then toggle
	pane.Update(keyMsg("l"))
	drainPane(t, pane, pane.Update(keyMsg(" ")))

	habitStore, _ := store.LoadHabits()
	if !habitStore.Habits[0].Progress[1] {
		t.Error("day 1 not marked after toggle")
	}
	if habitStore.Habits[0].Progress[0] {
		t.Error("day 0 should be unmarked")
	}
}

func TestHabitsPaneAddFlow(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	pane := newHabitsPane(t, store)

	pane.Update(keyMsg("a"))
	if !pane.IsAdding() {
		t.Fatal("pane not in add mode after 'a'")
	}

	pane.input.SetValue("Stretch")
	drainPane(t, pane, pane.Update(keyEnter()))

	// Second step: days, left empty for the default
	drainPane(t, pane, pane.Update(keyEnter()))

	habitStore, _ := store.LoadHabits()
	if len(habitStore.Habits) != 1 {
		t.Fatalf("len(habits) = %d, want 1", len(habitStore.Habits))
	}
	if habitStore.Habits[0].Name != "Stretch" {
		t.Errorf("Name = %q", habitStore.Habits[0].Name)
	}
	if habitStore.Habits[0].Days != storage.DefaultHabitDays {
		t.Errorf("Days = %d, want %d", habitStore.Habits[0].Days, storage.DefaultHabitDays)
	}
}

func TestHabitsPaneReset(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	habit, _ := store.AddHabit("Exercise", storage.PriorityLow, 4, "default")
	store.ToggleHabitDay(habit.ID, 0)
	store.ToggleHabitDay(habit.ID, 2)

	pane := newHabitsPane(t, store)
	drainPane(t, pane, pane.Update(keyMsg("r")))

	habitStore, _ := store.LoadHabits()
	if habitStore.Habits[0].CompletedDays() != 0 {
		t.Errorf("CompletedDays = %d after reset, want 0", habitStore.Habits[0].CompletedDays())
	}
	if habitStore.Habits[0].Days != 4 {
		t.Errorf("Days = %d after reset, want 4", habitStore.Habits[0].Days)
	}
}

func TestHabitsPaneDelete(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	store.AddHabit("Exercise", storage.PriorityLow, 4, "default")
	pane := newHabitsPane(t, store)

	drainPane(t, pane, pane.Update(keyMsg("x")))

	habitStore, _ := store.LoadHabits()
	if len(habitStore.Habits) != 0 {
		t.Errorf("len(habits) = %d after delete, want 0", len(habitStore.Habits))
	}
}

func TestHabitsPaneDayCursorClamped(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	store.AddHabit("Short", storage.PriorityLow, 3, "default")
	pane := newHabitsPane(t, store)

	for i := 0; i < 10; i++ {
		pane.Update(keyMsg("l"))
	}
	if pane.dayCursor != 2 {
		t.Errorf("dayCursor = %d, want clamped to 2", pane.dayCursor)
	}

	for i := 0; i < 10; i++ {
		pane.Update(keyMsg("h"))
	}
	if pane.dayCursor != 0 {
		t.Errorf("dayCursor = %d, want clamped to 0", pane.dayCursor)
	}
}
