// Package importer provides import functionality for the hub app.
// This file implements Todoist CSV import.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"hub/internal/storage"
)

// TodoistImporter handles importing from Todoist CSV exports.
type TodoistImporter struct{}

// Name returns the importer name.
func (t *TodoistImporter) Name() string {
	return "todoist"
}

// Preview reads and parses the Todoist CSV format.
func (t *TodoistImporter) Preview(reader io.Reader) ([]PreviewTask, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\uFEFF") // UTF-8 BOM (common in some exports)
		}
		colIndex[strings.ToUpper(strings.TrimSpace(col))] = i
	}

	requiredCols := []string{"TYPE", "CONTENT"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	var tasks []PreviewTask

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		// Skip non-task rows (section headers, notes).
		typeIdx := colIndex["TYPE"]
		if typeIdx >= len(record) || strings.ToLower(record[typeIdx]) != "task" {
			continue
		}

		task := PreviewTask{}

		if idx, ok := colIndex["CONTENT"]; ok && idx < len(record) {
			task.Name = strings.TrimSpace(record[idx])
		}
		if task.Name == "" {
			continue
		}

		if idx, ok := colIndex["PRIORITY"]; ok && idx < len(record) {
			task.Priority = mapTodoistPriority(record[idx])
		} else {
			task.Priority = storage.PriorityLow
		}

		if idx, ok := colIndex["DATE"]; ok && idx < len(record) {
			task.DueDate = parseTodoistDate(record[idx])
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// mapTodoistPriority converts Todoist priority to our priority system.
// Todoist: 1 = urgent (highest), 2 = high, 3 = medium, 4 = normal (lowest)
func mapTodoistPriority(priority string) storage.Priority {
	switch strings.TrimSpace(priority) {
	case "1", "2":
		return storage.PriorityHigh
	case "3":
		return storage.PriorityMedium
	default:
		return storage.PriorityLow
	}
}

// parseTodoistDate parses various Todoist date formats into YYYY-MM-DD.
// Returns empty when nothing parses.
func parseTodoistDate(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return ""
	}

	formats := []string{
		"2006-01-02",
		"Jan 2 2006",
		"Jan 2, 2006",
		"2 Jan 2006",
		"January 2, 2006",
		"01/02/2006",
		"02/01/2006",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, time.Local); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return ""
}
