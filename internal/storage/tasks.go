package storage

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// SortCriterion selects a task collection ordering. Sorting rewrites the
// stored order; it is not a view.
type SortCriterion string

const (
	SortDefault      SortCriterion = "default"       // descending by id, i.e. reverse creation order
	SortPriorityHigh SortCriterion = "priority-high" // high first
	SortPriorityLow  SortCriterion = "priority-low"  // low first
)

// TaskFilter selects a view over the collection without mutating it.
type TaskFilter string

const (
	FilterAll       TaskFilter = "all"
	FilterPending   TaskFilter = "pending"
	FilterCompleted TaskFilter = "completed"
)

// DueState classifies a task against the current date at day granularity.
type DueState int

const (
	DueNormal DueState = iota
	DueToday
	DueOverdue
)

// LoadTasks reads tasks from disk
func (s *Storage) LoadTasks() (*TaskStore, error) {
	store := TaskStore{Tasks: []Task{}}
	err := s.loadJSONWithRecovery("tasks.json", &store)
	return &store, err
}

// SaveTasks writes tasks to disk
func (s *Storage) SaveTasks(store *TaskStore) error {
	return s.writeJSONAtomic("tasks.json", store)
}

// AddTask appends a new pending task. Name and due date are required;
// an unknown priority falls back to low.
func (s *Storage) AddTask(name, dueDate string, priority Priority) (*Task, error) {
	name = strings.TrimSpace(name)
	dueDate = strings.TrimSpace(dueDate)

	if name == "" {
		return nil, fmt.Errorf("task name is required")
	}
	if len(name) > maxNameLen {
		return nil, fmt.Errorf("task name too long (max %d)", maxNameLen)
	}
	if _, err := time.Parse("2006-01-02", dueDate); err != nil {
		return nil, fmt.Errorf("invalid due date %q: expected YYYY-MM-DD", dueDate)
	}
	if !ValidPriority(priority) {
		priority = PriorityLow
	}

	store, err := s.LoadTasks()
	if err != nil {
		return nil, err
	}

	id, err := newID("t")
	if err != nil {
		return nil, err
	}

	task := Task{
		ID:        id,
		Name:      name,
		DueDate:   dueDate,
		Priority:  priority,
		Completed: false,
		CreatedAt: s.Now(),
	}

	store.Tasks = append(store.Tasks, task)

	if err := s.SaveTasks(store); err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateTask replaces a task's name, due date and priority, leaving the
// completion flag untouched. An unknown id is a silent no-op.
func (s *Storage) UpdateTask(id, name, dueDate string, priority Priority) error {
	name = strings.TrimSpace(name)
	dueDate = strings.TrimSpace(dueDate)

	if name == "" {
		return fmt.Errorf("task name is required")
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("task name too long (max %d)", maxNameLen)
	}
	if _, err := time.Parse("2006-01-02", dueDate); err != nil {
		return fmt.Errorf("invalid due date %q: expected YYYY-MM-DD", dueDate)
	}
	if !ValidPriority(priority) {
		priority = PriorityLow
	}

	store, err := s.LoadTasks()
	if err != nil {
		return err
	}

	for i := range store.Tasks {
		if store.Tasks[i].ID == id {
			store.Tasks[i].Name = name
			store.Tasks[i].DueDate = dueDate
			store.Tasks[i].Priority = priority
			return s.SaveTasks(store)
		}
	}

	return nil
}

// ToggleTask flips a task's completion flag. An unknown id is a silent
// no-op.
func (s *Storage) ToggleTask(id string) error {
	store, err := s.LoadTasks()
	if err != nil {
		return err
	}

	for i := range store.Tasks {
		if store.Tasks[i].ID == id {
			store.Tasks[i].Completed = !store.Tasks[i].Completed
			return s.SaveTasks(store)
		}
	}

	return nil
}

// DeleteTask removes a task. An unknown id is a silent no-op.
func (s *Storage) DeleteTask(id string) error {
	store, err := s.LoadTasks()
	if err != nil {
		return err
	}

	for i := range store.Tasks {
		if store.Tasks[i].ID == id {
			store.Tasks = append(store.Tasks[:i], store.Tasks[i+1:]...)
			return s.SaveTasks(store)
		}
	}

	return nil
}

// ReorderTasks rewrites the collection in the given id order. Ids not in
// the collection are skipped; tasks missing from the order are appended
// at the end in their prior relative order. (Habit reordering drops
// unnamed items instead — the two collections deliberately differ.)
func (s *Storage) ReorderTasks(order []string) error {
	store, err := s.LoadTasks()
	if err != nil {
		return err
	}

	byID := make(map[string]int, len(store.Tasks))
	for i, t := range store.Tasks {
		byID[t.ID] = i
	}

	reordered := make([]Task, 0, len(store.Tasks))
	placed := make(map[string]bool, len(order))
	for _, id := range order {
		if i, ok := byID[id]; ok && !placed[id] {
			reordered = append(reordered, store.Tasks[i])
			placed[id] = true
		}
	}
	for _, t := range store.Tasks {
		if !placed[t.ID] {
			reordered = append(reordered, t)
		}
	}
	store.Tasks = reordered

	return s.SaveTasks(store)
}

// SortTasks reorders the stored collection by the given criterion and
// persists the result. Default order is descending by id, which matches
// reverse creation order because ids carry a millisecond timestamp.
func (s *Storage) SortTasks(criterion SortCriterion) error {
	store, err := s.LoadTasks()
	if err != nil {
		return err
	}

	switch criterion {
	case SortPriorityHigh:
		sort.SliceStable(store.Tasks, func(i, j int) bool {
			return priorityRank(store.Tasks[i].Priority) > priorityRank(store.Tasks[j].Priority)
		})
	case SortPriorityLow:
		sort.SliceStable(store.Tasks, func(i, j int) bool {
			return priorityRank(store.Tasks[i].Priority) < priorityRank(store.Tasks[j].Priority)
		})
	default:
		sort.SliceStable(store.Tasks, func(i, j int) bool {
			return store.Tasks[i].ID > store.Tasks[j].ID
		})
	}

	return s.SaveTasks(store)
}

// FilterTasks selects a view over the tasks without touching the stored
// order.
func FilterTasks(tasks []Task, filter TaskFilter) []Task {
	switch filter {
	case FilterPending:
		out := make([]Task, 0, len(tasks))
		for _, t := range tasks {
			if !t.Completed {
				out = append(out, t)
			}
		}
		return out
	case FilterCompleted:
		out := make([]Task, 0, len(tasks))
		for _, t := range tasks {
			if t.Completed {
				out = append(out, t)
			}
		}
		return out
	default:
		return tasks
	}
}

// ClassifyDue derives a task's due state against now, comparing at day
// granularity. Completed tasks are never overdue or due-today.
func ClassifyDue(t *Task, now time.Time) DueState {
	if t.Completed {
		return DueNormal
	}
	due, err := time.ParseInLocation("2006-01-02", t.DueDate, now.Location())
	if err != nil {
		return DueNormal
	}
	today := startOfDay(now)
	switch {
	case due.Before(today):
		return DueOverdue
	case due.Equal(today):
		return DueToday
	default:
		return DueNormal
	}
}

// TaskSummary aggregates task counts for display and reports.
type TaskSummary struct {
	Total     int
	Completed int
	Pending   int
}

// SummarizeTasks computes the aggregate counts over a loaded store.
func SummarizeTasks(store *TaskStore) TaskSummary {
	sum := TaskSummary{Total: len(store.Tasks)}
	for _, t := range store.Tasks {
		if t.Completed {
			sum.Completed++
		}
	}
	sum.Pending = sum.Total - sum.Completed
	return sum
}
