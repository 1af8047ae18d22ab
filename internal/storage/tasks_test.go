package storage

import (
	"testing"
	"time"
)

func addTestTask(t *testing.T, store *Storage, name, dueDate string, priority Priority) *Task {
	t.Helper()
	task, err := store.AddTask(name, dueDate, priority)
	if err != nil {
		t.Fatalf("AddTask(%q) error = %v", name, err)
	}
	return task
}

func TestAddTask(t *testing.T) {
	tests := []struct {
		name     string
		taskName string
		dueDate  string
		priority Priority
		wantErr  bool
	}{
		{name: "valid task", taskName: "Pay bills", dueDate: "2026-02-01", priority: PriorityHigh},
		{name: "unknown priority falls back to low", taskName: "Sweep", dueDate: "2026-02-01", priority: Priority("asap")},
		{name: "empty name rejected", taskName: "  ", dueDate: "2026-02-01", priority: PriorityLow, wantErr: true},
		{name: "missing due date rejected", taskName: "Sweep", dueDate: "", priority: PriorityLow, wantErr: true},
		{name: "malformed due date rejected", taskName: "Sweep", dueDate: "01/02/2026", priority: PriorityLow, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := createTestStorage(t)

			task, err := store.AddTask(tt.taskName, tt.dueDate, tt.priority)
			if tt.wantErr {
				if err == nil {
					t.Fatal("AddTask() error = nil, want validation error")
				}
				loaded, _ := store.LoadTasks()
				if len(loaded.Tasks) != 0 {
					t.Error("rejected task must not be persisted")
				}
				return
			}
			if err != nil {
				t.Fatalf("AddTask() error = %v", err)
			}

			if task.Completed {
				t.Error("task.Completed = true on create, want false")
			}
			if !ValidPriority(task.Priority) {
				t.Errorf("task.Priority = %q, want a valid level", task.Priority)
			}
			if task.ID == "" {
				t.Error("task.ID is empty")
			}
		})
	}
}

func TestToggleTask(t *testing.T) {
	store := createTestStorage(t)
	task := addTestTask(t, store, "Pay bills", "2026-02-01", PriorityHigh)

	if err := store.ToggleTask(task.ID); err != nil {
		t.Fatalf("ToggleTask() error = %v", err)
	}
	loaded, _ := store.LoadTasks()
	if !loaded.Tasks[0].Completed {
		t.Error("task not completed after toggle")
	}

	if err := store.ToggleTask(task.ID); err != nil {
		t.Fatalf("ToggleTask() error = %v", err)
	}
	loaded, _ = store.LoadTasks()
	if loaded.Tasks[0].Completed {
		t.Error("task still completed after double toggle")
	}

	// Unknown id: silent no-op.
	if err := store.ToggleTask("t_missing"); err != nil {
		t.Errorf("ToggleTask(unknown) error = %v, want silent no-op", err)
	}
}

func TestUpdateTaskKeepsCompletion(t *testing.T) {
	store := createTestStorage(t)
	task := addTestTask(t, store, "Pay bills", "2026-02-01", PriorityLow)

	if err := store.ToggleTask(task.ID); err != nil {
		t.Fatalf("ToggleTask() error = %v", err)
	}
	if err := store.UpdateTask(task.ID, "Pay utility bills", "2026-02-05", PriorityHigh); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}

	loaded, _ := store.LoadTasks()
	got := loaded.Tasks[0]
	if got.Name != "Pay utility bills" || got.DueDate != "2026-02-05" || got.Priority != PriorityHigh {
		t.Errorf("task after update = %+v", got)
	}
	if !got.Completed {
		t.Error("update must not touch completion state")
	}

	// Unknown id: silent no-op.
	if err := store.UpdateTask("t_missing", "X", "2026-02-05", PriorityLow); err != nil {
		t.Errorf("UpdateTask(unknown) error = %v, want silent no-op", err)
	}
}

func TestDeleteTask(t *testing.T) {
	store := createTestStorage(t)
	keep := addTestTask(t, store, "Keep", "2026-02-01", PriorityLow)
	gone := addTestTask(t, store, "Gone", "2026-02-01", PriorityLow)

	if err := store.DeleteTask(gone.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	loaded, _ := store.LoadTasks()
	if len(loaded.Tasks) != 1 || loaded.Tasks[0].ID != keep.ID {
		t.Error("delete removed the wrong task")
	}

	if err := store.DeleteTask("t_missing"); err != nil {
		t.Errorf("DeleteTask(unknown) error = %v, want silent no-op", err)
	}
}

func TestReorderTasksAppendsMissing(t *testing.T) {
	store := createTestStorage(t)
	a := addTestTask(t, store, "A", "2026-02-01", PriorityLow)
	b := addTestTask(t, store, "B", "2026-02-01", PriorityLow)
	c := addTestTask(t, store, "C", "2026-02-01", PriorityLow)
	d := addTestTask(t, store, "D", "2026-02-01", PriorityLow)

	// c and d are omitted: they are appended at the end in prior
	// relative order, not dropped.
	if err := store.ReorderTasks([]string{b.ID, a.ID}); err != nil {
		t.Fatalf("ReorderTasks() error = %v", err)
	}

	loaded, _ := store.LoadTasks()
	if len(loaded.Tasks) != 4 {
		t.Fatalf("len(tasks) = %d, want 4 (omitted tasks kept)", len(loaded.Tasks))
	}
	wantOrder := []string{b.ID, a.ID, c.ID, d.ID}
	for i, id := range wantOrder {
		if loaded.Tasks[i].ID != id {
			t.Errorf("tasks[%d].ID = %s, want %s", i, loaded.Tasks[i].ID, id)
		}
	}

	// Unknown ids in the order are skipped.
	if err := store.ReorderTasks([]string{"t_missing", a.ID, b.ID, c.ID, d.ID}); err != nil {
		t.Fatalf("ReorderTasks() error = %v", err)
	}
	loaded, _ = store.LoadTasks()
	if len(loaded.Tasks) != 4 {
		t.Errorf("len(tasks) = %d, want 4", len(loaded.Tasks))
	}
}

func TestSortTasks(t *testing.T) {
	store := createTestStorage(t)
	low := addTestTask(t, store, "Low", "2026-02-01", PriorityLow)
	high := addTestTask(t, store, "High", "2026-02-01", PriorityHigh)
	medium := addTestTask(t, store, "Medium", "2026-02-01", PriorityMedium)

	if err := store.SortTasks(SortPriorityHigh); err != nil {
		t.Fatalf("SortTasks() error = %v", err)
	}
	loaded, _ := store.LoadTasks()
	wantHigh := []string{high.ID, medium.ID, low.ID}
	for i, id := range wantHigh {
		if loaded.Tasks[i].ID != id {
			t.Errorf("priority-high tasks[%d].ID = %s, want %s", i, loaded.Tasks[i].ID, id)
		}
	}

	// priority-low is the exact reverse when there are no ties.
	if err := store.SortTasks(SortPriorityLow); err != nil {
		t.Fatalf("SortTasks() error = %v", err)
	}
	loaded, _ = store.LoadTasks()
	for i, id := range wantHigh {
		j := len(wantHigh) - 1 - i
		if loaded.Tasks[j].ID != id {
			t.Errorf("priority-low tasks[%d].ID = %s, want %s", j, loaded.Tasks[j].ID, id)
		}
	}

	// Default: descending by id == reverse creation order.
	if err := store.SortTasks(SortDefault); err != nil {
		t.Fatalf("SortTasks() error = %v", err)
	}
	loaded, _ = store.LoadTasks()
	for i := 1; i < len(loaded.Tasks); i++ {
		if loaded.Tasks[i-1].ID < loaded.Tasks[i].ID {
			t.Errorf("default sort not descending by id at %d", i)
		}
	}
}

func TestFilterTasks(t *testing.T) {
	store := createTestStorage(t)
	addTestTask(t, store, "Pending", "2026-02-01", PriorityLow)
	done := addTestTask(t, store, "Done", "2026-02-01", PriorityLow)
	if err := store.ToggleTask(done.ID); err != nil {
		t.Fatalf("ToggleTask() error = %v", err)
	}

	loaded, _ := store.LoadTasks()

	if got := FilterTasks(loaded.Tasks, FilterAll); len(got) != 2 {
		t.Errorf("all filter = %d tasks, want 2", len(got))
	}
	if got := FilterTasks(loaded.Tasks, FilterPending); len(got) != 1 || got[0].Name != "Pending" {
		t.Errorf("pending filter = %+v", got)
	}
	if got := FilterTasks(loaded.Tasks, FilterCompleted); len(got) != 1 || got[0].Name != "Done" {
		t.Errorf("completed filter = %+v", got)
	}

	// Filtering never mutates the stored collection.
	reloaded, _ := store.LoadTasks()
	if len(reloaded.Tasks) != 2 {
		t.Errorf("len(tasks) = %d after filtering, want 2", len(reloaded.Tasks))
	}
}

func TestClassifyDue(t *testing.T) {
	now := time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		dueDate   string
		completed bool
		want      DueState
	}{
		{name: "yesterday pending is overdue", dueDate: "2026-02-09", want: DueOverdue},
		{name: "today pending is due today", dueDate: "2026-02-10", want: DueToday},
		{name: "tomorrow pending is normal", dueDate: "2026-02-11", want: DueNormal},
		{name: "completed suppresses overdue", dueDate: "2026-02-09", completed: true, want: DueNormal},
		{name: "completed suppresses due today", dueDate: "2026-02-10", completed: true, want: DueNormal},
		{name: "unparseable date is normal", dueDate: "soon", want: DueNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{DueDate: tt.dueDate, Completed: tt.completed}
			if got := ClassifyDue(&task, now); got != tt.want {
				t.Errorf("ClassifyDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarizeTasks(t *testing.T) {
	store := createTestStorage(t)
	addTestTask(t, store, "A", "2026-02-01", PriorityLow)
	b := addTestTask(t, store, "B", "2026-02-01", PriorityLow)
	addTestTask(t, store, "C", "2026-02-01", PriorityLow)
	if err := store.ToggleTask(b.ID); err != nil {
		t.Fatalf("ToggleTask() error = %v", err)
	}

	loaded, _ := store.LoadTasks()
	sum := SummarizeTasks(loaded)
	if sum.Total != 3 || sum.Completed != 1 || sum.Pending != 2 {
		t.Errorf("summary = %+v, want 3/1/2", sum)
	}
	if sum.Pending+sum.Completed != sum.Total {
		t.Error("pending + completed != total")
	}
}
