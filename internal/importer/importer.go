// Package importer provides import functionality for migrating tasks from
// other productivity tools like Todoist and Taskwarrior.
package importer

import (
	"fmt"
	"io"

	"hub/internal/storage"
)

// ImportResult contains statistics about an import operation.
type ImportResult struct {
	Imported int      // Number of successfully imported tasks
	Skipped  int      // Number of skipped items (notes, empty rows, etc.)
	Errors   []string // Error messages for failed imports
}

// PreviewTask represents a task preview before import.
type PreviewTask struct {
	Name     string
	DueDate  string // YYYY-MM-DD, empty when the source had no date
	Priority storage.Priority
	Done     bool
}

// Importer defines the interface for import implementations.
type Importer interface {
	// Preview reads tasks from the reader without importing.
	Preview(reader io.Reader) ([]PreviewTask, error)

	// Name returns the importer name (e.g., "todoist", "taskwarrior").
	Name() string
}

// GetImporter returns the appropriate importer for the given format.
func GetImporter(format string) Importer {
	switch format {
	case "todoist":
		return &TodoistImporter{}
	case "taskwarrior":
		return &TaskwarriorImporter{}
	default:
		return nil
	}
}

// SupportedFormats returns the list of supported import formats.
func SupportedFormats() []string {
	return []string{"todoist", "taskwarrior"}
}

// Import runs an importer against a reader and writes the resulting
// tasks through storage. Tasks without a source date are due today;
// tasks completed at the source stay completed here.
func Import(imp Importer, reader io.Reader, store *storage.Storage) (*ImportResult, error) {
	tasks, err := imp.Preview(reader)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	today := store.Now().Format("2006-01-02")

	for _, task := range tasks {
		dueDate := task.DueDate
		if dueDate == "" {
			dueDate = today
		}

		added, err := store.AddTask(task.Name, dueDate, task.Priority)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", task.Name, err))
			continue
		}
		if task.Done {
			if err := store.ToggleTask(added.ID); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("failed to mark %s complete: %v", task.Name, err))
			}
		}
		result.Imported++
	}

	return result, nil
}
