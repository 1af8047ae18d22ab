package storage

import (
	"fmt"
	"strings"
)

// LoadHabits reads habits from disk
func (s *Storage) LoadHabits() (*HabitStore, error) {
	store := HabitStore{Habits: []Habit{}}
	err := s.loadJSONWithRecovery("habits.json", &store)
	return &store, err
}

// SaveHabits writes habits to disk
func (s *Storage) SaveHabits(store *HabitStore) error {
	return s.writeJSONAtomic("habits.json", store)
}

// AddHabit creates a new habit with a zero-filled progress grid. Days
// falls back to DefaultHabitDays when non-positive; priority falls back
// to low when unknown.
func (s *Storage) AddHabit(name string, priority Priority, days int, cardColor string) (*Habit, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, fmt.Errorf("habit name is required")
	}
	if len(name) > maxNameLen {
		return nil, fmt.Errorf("habit name too long (max %d)", maxNameLen)
	}
	if !ValidPriority(priority) {
		priority = PriorityLow
	}
	if days <= 0 {
		days = DefaultHabitDays
	}

	store, err := s.LoadHabits()
	if err != nil {
		return nil, err
	}

	id, err := newID("h")
	if err != nil {
		return nil, err
	}

	habit := Habit{
		ID:        id,
		Name:      name,
		Priority:  priority,
		Days:      days,
		CardColor: cardColor,
		Progress:  make([]bool, days),
		CreatedAt: s.Now(),
	}

	store.Habits = append(store.Habits, habit)

	if err := s.SaveHabits(store); err != nil {
		return nil, err
	}

	return &habit, nil
}

// ToggleHabitDay flips one day of a habit's progress grid and persists.
// An unknown id is a silent no-op; an out-of-range day is rejected.
func (s *Storage) ToggleHabitDay(id string, day int) error {
	store, err := s.LoadHabits()
	if err != nil {
		return err
	}

	for i := range store.Habits {
		if store.Habits[i].ID != id {
			continue
		}
		if day < 0 || day >= len(store.Habits[i].Progress) {
			return fmt.Errorf("day %d out of range for habit %s (0..%d)", day, id, len(store.Habits[i].Progress)-1)
		}
		store.Habits[i].Progress[day] = !store.Habits[i].Progress[day]
		return s.SaveHabits(store)
	}

	return nil
}

// UpdateHabit replaces a habit's editable fields. When the day count
// changes, the progress grid is resized in place: the common prefix is
// kept, growth zero-fills, shrinking truncates. An unknown id is a
// silent no-op.
func (s *Storage) UpdateHabit(id, name string, priority Priority, days int, cardColor string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("habit name is required")
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("habit name too long (max %d)", maxNameLen)
	}
	if !ValidPriority(priority) {
		priority = PriorityLow
	}
	if days <= 0 {
		days = DefaultHabitDays
	}

	store, err := s.LoadHabits()
	if err != nil {
		return err
	}

	for i := range store.Habits {
		if store.Habits[i].ID != id {
			continue
		}
		h := &store.Habits[i]
		h.Name = name
		h.Priority = priority
		h.CardColor = cardColor
		if days != h.Days {
			h.Progress = resizeProgress(h.Progress, days)
			h.Days = days
		}
		return s.SaveHabits(store)
	}

	return nil
}

func resizeProgress(progress []bool, days int) []bool {
	resized := make([]bool, days)
	copy(resized, progress)
	return resized
}

// ResetHabit clears every day of a habit's progress grid, keeping its
// length. An unknown id is a silent no-op.
func (s *Storage) ResetHabit(id string) error {
	store, err := s.LoadHabits()
	if err != nil {
		return err
	}

	for i := range store.Habits {
		if store.Habits[i].ID == id {
			store.Habits[i].Progress = make([]bool, store.Habits[i].Days)
			return s.SaveHabits(store)
		}
	}

	return nil
}

// DeleteHabit removes a habit. An unknown id is a silent no-op.
func (s *Storage) DeleteHabit(id string) error {
	store, err := s.LoadHabits()
	if err != nil {
		return err
	}

	for i := range store.Habits {
		if store.Habits[i].ID == id {
			store.Habits = append(store.Habits[:i], store.Habits[i+1:]...)
			return s.SaveHabits(store)
		}
	}

	return nil
}

// ReorderHabits rewrites the collection in the given id order. Ids not
// present in the collection are skipped; habits not named in the order
// are dropped. (Task reordering keeps unnamed items instead — the two
// collections deliberately differ here.)
func (s *Storage) ReorderHabits(order []string) error {
	store, err := s.LoadHabits()
	if err != nil {
		return err
	}

	byID := make(map[string]Habit, len(store.Habits))
	for _, h := range store.Habits {
		byID[h.ID] = h
	}

	reordered := make([]Habit, 0, len(order))
	for _, id := range order {
		if h, ok := byID[id]; ok {
			reordered = append(reordered, h)
		}
	}
	store.Habits = reordered

	return s.SaveHabits(store)
}

// HabitSummary aggregates habit statistics for display and reports.
//
// CompletedToday counts habits with at least one day marked, and
// CurrentStreak counts habits whose grid is fully complete. Neither is
// tied to the calendar; the field names carry over from the tracker this
// data model reproduces.
type HabitSummary struct {
	TotalHabits    int
	CompletedToday int
	CurrentStreak  int
}

// SummarizeHabits computes the aggregate stats over a loaded store.
func SummarizeHabits(store *HabitStore) HabitSummary {
	sum := HabitSummary{TotalHabits: len(store.Habits)}
	for i := range store.Habits {
		h := &store.Habits[i]
		if h.CompletedDays() > 0 {
			sum.CompletedToday++
		}
		if h.IsCompleted() {
			sum.CurrentStreak++
		}
	}
	return sum
}
