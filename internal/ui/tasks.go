// Package ui provides terminal user interface components for the hub app.
package ui

import (
	"fmt"
	"strings"

	"hub/internal/config"
	"hub/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// TasksPane handles the task list display and interactions.
type TasksPane struct {
	taskStore *storage.TaskStore
	cursor    int
	focused   bool
	width     int
	height    int
	adding    bool
	editing   bool
	addStep   int // 0 = name, 1 = due date, 2 = priority
	input     textinput.Model
	newName   string
	newDue    string
	editID    string
	filter    storage.TaskFilter
	criterion storage.SortCriterion
	storage   *storage.Storage
	styles    *Styles

	// Key bindings
	keys      TaskKeyMap
	inputKeys InputKeyMap
}

// NewTasksPane creates a new task pane.
func NewTasksPane(store *storage.Storage, styles *Styles) *TasksPane {
	return NewTasksPaneWithKeys(store, styles, &config.KeysConfig{})
}

// NewTasksPaneWithKeys creates a new task pane with custom key bindings.
func NewTasksPaneWithKeys(store *storage.Storage, styles *Styles, keyCfg *config.KeysConfig) *TasksPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200
	ti.Width = 40

	return &TasksPane{
		taskStore: &storage.TaskStore{},
		cursor:    0,
		focused:   false,
		input:     ti,
		filter:    storage.FilterAll,
		criterion: storage.SortDefault,
		storage:   store,
		styles:    styles,
		keys:      NewTaskKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// LoadTasksCmd returns a command that loads tasks asynchronously.
func (p *TasksPane) LoadTasksCmd() tea.Cmd {
	return loadTasksCmd(p.storage)
}

// setTaskStore updates the task list and adjusts cursor bounds.
func (p *TasksPane) setTaskStore(store *storage.TaskStore) {
	p.taskStore = store
	if p.cursor >= len(p.visible()) {
		p.cursor = max(0, len(p.visible())-1)
	}
}

// visible returns the tasks matching the current filter. The filter is a
// view concern only; the stored order is untouched.
func (p *TasksPane) visible() []storage.Task {
	return storage.FilterTasks(p.taskStore.Tasks, p.filter)
}

// selectedTask returns the task under the cursor, or nil.
func (p *TasksPane) selectedTask() *storage.Task {
	visible := p.visible()
	if p.cursor < 0 || p.cursor >= len(visible) {
		return nil
	}
	return &visible[p.cursor]
}

// SetSize sets the pane dimensions.
func (p *TasksPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-4)
}

// SetFocused sets whether this pane is focused.
func (p *TasksPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *TasksPane) IsFocused() bool {
	return p.focused
}

// IsAdding returns whether we're in an input mode (add or edit).
func (p *TasksPane) IsAdding() bool {
	return p.adding || p.editing
}

// Update handles messages for the task pane.
func (p *TasksPane) Update(msg tea.Msg) tea.Cmd {
	// Handle async messages first
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		if msg.store != nil {
			p.setTaskStore(msg.store)
		}
		return nil

	case taskAddedMsg:
		if msg.err == nil {
			return p.LoadTasksCmd()
		}
		return nil

	case taskToggledMsg, taskUpdatedMsg, taskDeletedMsg, tasksSortedMsg:
		return p.LoadTasksCmd()
	}

	if p.IsAdding() {
		return p.updateInputMode(msg)
	}

	// Normal mode
	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		visible := p.visible()
		switch {
		case key.Matches(msg, p.keys.Down):
			if len(visible) > 0 {
				p.cursor = min(p.cursor+1, len(visible)-1)
			}

		case key.Matches(msg, p.keys.Up):
			if len(visible) > 0 {
				p.cursor = max(p.cursor-1, 0)
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			if len(visible) > 0 {
				p.cursor = len(visible) - 1
			}

		case key.Matches(msg, p.keys.Add):
			p.adding = true
			p.addStep = 0
			p.input.Placeholder = "What needs to be done?"
			p.input.Focus()
			return textinput.Blink

		case key.Matches(msg, p.keys.Edit):
			if t := p.selectedTask(); t != nil {
				p.editing = true
				p.editID = t.ID
				p.addStep = 0
				p.input.Placeholder = "Task name"
				p.input.SetValue(t.Name)
				p.newDue = t.DueDate
				p.input.Focus()
				return textinput.Blink
			}

		case key.Matches(msg, p.keys.Toggle):
			if t := p.selectedTask(); t != nil {
				return toggleTaskCmd(p.storage, t.ID)
			}

		case key.Matches(msg, p.keys.Delete):
			if t := p.selectedTask(); t != nil {
				return deleteTaskCmd(p.storage, t.ID)
			}

		case key.Matches(msg, p.keys.Sort):
			p.criterion = nextSortCriterion(p.criterion)
			return sortTasksCmd(p.storage, p.criterion)

		case key.Matches(msg, p.keys.Filter):
			p.filter = nextFilter(p.filter)
			p.cursor = 0
		}
	}

	return nil
}

// nextSortCriterion cycles through the persisted sort orders.
func nextSortCriterion(c storage.SortCriterion) storage.SortCriterion {
	switch c {
	case storage.SortDefault:
		return storage.SortPriorityHigh
	case storage.SortPriorityHigh:
		return storage.SortPriorityLow
	default:
		return storage.SortDefault
	}
}

// nextFilter cycles through the view filters.
func nextFilter(f storage.TaskFilter) storage.TaskFilter {
	switch f {
	case storage.FilterAll:
		return storage.FilterPending
	case storage.FilterPending:
		return storage.FilterCompleted
	default:
		return storage.FilterAll
	}
}

// updateInputMode handles input while creating or editing a task.
// Both flows share the same three steps: name, due date, priority.
func (p *TasksPane) updateInputMode(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.inputKeys.Confirm):
			return p.advanceInputStep()

		case key.Matches(msg, p.inputKeys.Cancel):
			p.resetInputMode()
			return nil
		}
	}

	p.input, cmd = p.input.Update(msg)
	return cmd
}

// advanceInputStep moves the add/edit flow forward one step, dispatching the
// storage command on the final step.
func (p *TasksPane) advanceInputStep() tea.Cmd {
	value := strings.TrimSpace(p.input.Value())

	switch p.addStep {
	case 0:
		if value == "" {
			return nil
		}
		p.newName = value
		p.addStep = 1
		p.input.Reset()
		if p.newDue != "" {
			p.input.SetValue(p.newDue)
		}
		p.input.Placeholder = "Due date YYYY-MM-DD (default today)"
		return nil

	case 1:
		if value == "" {
			value = p.storage.Now().Format("2006-01-02")
		}
		p.newDue = value
		p.addStep = 2
		p.input.Reset()
		p.input.Placeholder = "Priority: high / medium / low"
		return nil

	default:
		priority := parsePriority(value)
		name, due, id := p.newName, p.newDue, p.editID
		editing := p.editing
		p.resetInputMode()
		if editing {
			return updateTaskCmd(p.storage, id, name, due, priority)
		}
		return addTaskCmd(p.storage, name, due, priority)
	}
}

// parsePriority maps loose user input to a Priority, defaulting to low.
func parsePriority(value string) storage.Priority {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "h", "high":
		return storage.PriorityHigh
	case "m", "med", "medium":
		return storage.PriorityMedium
	default:
		return storage.PriorityLow
	}
}

// resetInputMode clears any add/edit state.
func (p *TasksPane) resetInputMode() {
	p.adding = false
	p.editing = false
	p.addStep = 0
	p.newName = ""
	p.newDue = ""
	p.editID = ""
	p.input.Reset()
	p.input.Placeholder = "What needs to be done?"
}

// View renders the task pane.
func (p *TasksPane) View() string {
	var b strings.Builder

	title := p.styles.PaneTitleStyle.Render("TASKS")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	// Filter / sort indicator
	b.WriteString("  " + p.styles.StatLabelStyle.Render(
		fmt.Sprintf("filter: %s  sort: %s", p.filter, p.criterion)))
	b.WriteString("\n")

	visible := p.visible()
	if len(visible) == 0 && !p.IsAdding() {
		b.WriteString("\n")
		if len(p.taskStore.Tasks) == 0 {
			b.WriteString(p.styles.StatLabelStyle.Render("  No tasks yet. Press 'a' to add one."))
		} else {
			b.WriteString(p.styles.StatLabelStyle.Render("  Nothing matches this filter."))
		}
		b.WriteString("\n")
	} else {
		maxTasks := p.height - 8
		if maxTasks < 3 {
			maxTasks = 5
		}
		startIdx := 0
		if p.cursor >= maxTasks {
			startIdx = p.cursor - maxTasks + 1
		}

		for i := range visible {
			if i < startIdx || i >= startIdx+maxTasks {
				continue
			}
			task := &visible[i]
			b.WriteString(p.renderTaskLine(task, i == p.cursor && p.focused && !p.IsAdding()))
			b.WriteString("\n")
		}

		sum := storage.SummarizeTasks(p.taskStore)
		b.WriteString("\n")
		b.WriteString("  " + p.styles.StatLabelStyle.Render(
			fmt.Sprintf("%d/%d complete", sum.Completed, sum.Total)))
		b.WriteString("\n")
	}

	// Input field when adding or editing
	if p.IsAdding() {
		b.WriteString("\n")
		var prompt string
		switch p.addStep {
		case 0:
			prompt = p.styles.InputPromptStyle.Render("Name: ")
		case 1:
			prompt = p.styles.InputPromptStyle.Render("Due: ")
		default:
			prompt = p.styles.InputPromptStyle.Render("Priority: ")
		}
		b.WriteString("  " + prompt + p.input.View())
		b.WriteString("\n")
	}

	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// renderTaskLine renders one task row with checkbox, priority, and due markers.
func (p *TasksPane) renderTaskLine(task *storage.Task, selected bool) string {
	priorityBadge := p.formatPriorityBadge(task.Priority)

	var checkbox string
	if task.Completed {
		checkbox = p.styles.TaskCheckboxDone
	} else {
		checkbox = p.styles.TaskCheckboxPending
	}

	dueIndicator := p.formatDueDate(task)

	availableTextWidth := p.width - 16
	if availableTextWidth < 5 {
		availableTextWidth = 5
	}
	name := runewidth.Truncate(task.Name, availableTextWidth, "..")

	if selected {
		textPart := fmt.Sprintf("%s%s %s", priorityBadge, checkbox, name)
		if dueIndicator != "" {
			textPart += "  " + dueIndicator
		}
		return p.styles.TaskSelectedStyle.Render(" " + textPart + " ")
	}

	var styledName string
	if task.Completed {
		styledName = p.styles.TaskDoneStyle.Render(name)
	} else {
		styledName = p.styles.TaskPendingStyle.Render(name)
	}
	line := fmt.Sprintf(" %s%s %s", priorityBadge, checkbox, styledName)
	if dueIndicator != "" {
		line += "  " + dueIndicator
	}
	return line
}

// formatPriorityBadge returns a styled priority indicator.
// Returns: "!" for high, "~" for medium, " " for low.
func (p *TasksPane) formatPriorityBadge(priority storage.Priority) string {
	switch priority {
	case storage.PriorityHigh:
		return p.styles.PriorityHighStyle.Render("!")
	case storage.PriorityMedium:
		return p.styles.PriorityMediumStyle.Render("~")
	default:
		return " " // space placeholder for alignment
	}
}

// formatDueDate returns a compact, styled due date indicator.
// Completed tasks never show overdue or due-today markers.
func (p *TasksPane) formatDueDate(task *storage.Task) string {
	switch storage.ClassifyDue(task, p.storage.Now()) {
	case storage.DueOverdue:
		return p.styles.DueDateOverdueStyle.Render("overdue " + task.DueDate)
	case storage.DueToday:
		return p.styles.DueDateTodayStyle.Render("today")
	default:
		return p.styles.DueDateFutureStyle.Render(task.DueDate)
	}
}

// Stats returns task statistics for the title bar.
func (p *TasksPane) Stats() (done, total int) {
	sum := storage.SummarizeTasks(p.taskStore)
	return sum.Completed, sum.Total
}
