// Package ui provides terminal user interface components for the hub app.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"hub/internal/config"
	"hub/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// HabitsPane handles habit tracking display and interactions.
type HabitsPane struct {
	habitStore *storage.HabitStore
	cursor     int
	dayCursor  int
	focused    bool
	width      int
	height     int
	adding     bool
	editing    bool
	addStep    int // 0 = name, 1 = days
	input      textinput.Model
	newName    string
	editID     string
	storage    *storage.Storage
	styles     *Styles

	// Key bindings
	keys      HabitKeyMap
	inputKeys InputKeyMap
}

// NewHabitsPane creates a new habits pane.
func NewHabitsPane(store *storage.Storage, styles *Styles) *HabitsPane {
	return NewHabitsPaneWithKeys(store, styles, &config.KeysConfig{})
}

// NewHabitsPaneWithKeys creates a new habits pane with custom key bindings.
func NewHabitsPaneWithKeys(store *storage.Storage, styles *Styles, keyCfg *config.KeysConfig) *HabitsPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "Habit name (e.g., Exercise)"
	ti.CharLimit = 60
	ti.Width = 30

	return &HabitsPane{
		habitStore: &storage.HabitStore{},
		cursor:     0,
		focused:    false,
		input:      ti,
		storage:    store,
		styles:     styles,
		keys:       NewHabitKeyMap(keyCfg),
		inputKeys:  NewInputKeyMap(keyCfg),
	}
}

// LoadHabitsCmd returns a command that loads habits asynchronously.
func (p *HabitsPane) LoadHabitsCmd() tea.Cmd {
	return loadHabitsCmd(p.storage)
}

// setHabitStore updates the habit store and adjusts cursor bounds.
func (p *HabitsPane) setHabitStore(store *storage.HabitStore) {
	p.habitStore = store
	if p.cursor >= len(p.habitStore.Habits) {
		p.cursor = max(0, len(p.habitStore.Habits)-1)
	}
	p.clampDayCursor()
}

// clampDayCursor keeps the day cursor inside the selected habit's grid.
func (p *HabitsPane) clampDayCursor() {
	h := p.selectedHabit()
	if h == nil {
		p.dayCursor = 0
		return
	}
	if p.dayCursor >= h.Days {
		p.dayCursor = max(0, h.Days-1)
	}
	if p.dayCursor < 0 {
		p.dayCursor = 0
	}
}

// selectedHabit returns the habit under the cursor, or nil.
func (p *HabitsPane) selectedHabit() *storage.Habit {
	if p.cursor < 0 || p.cursor >= len(p.habitStore.Habits) {
		return nil
	}
	return &p.habitStore.Habits[p.cursor]
}

// SetSize sets the pane dimensions.
func (p *HabitsPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-6)
}

// SetFocused sets whether this pane is focused.
func (p *HabitsPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *HabitsPane) IsFocused() bool {
	return p.focused
}

// IsAdding returns whether we're in an input mode (add or edit).
func (p *HabitsPane) IsAdding() bool {
	return p.adding || p.editing
}

// Update handles messages for the habits pane.
func (p *HabitsPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	// Handle async messages first
	switch msg := msg.(type) {
	case habitsLoadedMsg:
		if msg.store != nil {
			p.setHabitStore(msg.store)
		}
		return nil

	case habitAddedMsg:
		if msg.err == nil {
			return p.LoadHabitsCmd()
		}
		return nil

	case habitToggledMsg, habitUpdatedMsg, habitResetMsg, habitDeletedMsg:
		return p.LoadHabitsCmd()
	}

	// Input modes take the keyboard
	if p.adding {
		return p.updateAddMode(msg)
	}
	if p.editing {
		return p.updateEditMode(msg)
	}

	// Normal mode
	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Down):
			if len(p.habitStore.Habits) > 0 {
				p.cursor = min(p.cursor+1, len(p.habitStore.Habits)-1)
				p.clampDayCursor()
			}

		case key.Matches(msg, p.keys.Up):
			if len(p.habitStore.Habits) > 0 {
				p.cursor = max(p.cursor-1, 0)
				p.clampDayCursor()
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0
			p.clampDayCursor()

		case key.Matches(msg, p.keys.Bottom):
			if len(p.habitStore.Habits) > 0 {
				p.cursor = len(p.habitStore.Habits) - 1
				p.clampDayCursor()
			}

		case key.Matches(msg, p.keys.Left):
			p.dayCursor = max(p.dayCursor-1, 0)

		case key.Matches(msg, p.keys.Right):
			if h := p.selectedHabit(); h != nil {
				p.dayCursor = min(p.dayCursor+1, h.Days-1)
			}

		case key.Matches(msg, p.keys.Add):
			p.adding = true
			p.addStep = 0
			p.input.Placeholder = "Habit name (e.g., Exercise)"
			p.input.CharLimit = 60
			p.input.Focus()
			return textinput.Blink

		case key.Matches(msg, p.keys.Edit):
			if h := p.selectedHabit(); h != nil {
				p.editing = true
				p.editID = h.ID
				p.input.Placeholder = "New name"
				p.input.SetValue(h.Name)
				p.input.Focus()
				return textinput.Blink
			}

		case key.Matches(msg, p.keys.Toggle):
			if h := p.selectedHabit(); h != nil {
				return toggleHabitDayCmd(p.storage, h.ID, p.dayCursor)
			}

		case key.Matches(msg, p.keys.Reset):
			if h := p.selectedHabit(); h != nil {
				return resetHabitCmd(p.storage, h.ID)
			}

		case key.Matches(msg, p.keys.Delete):
			if h := p.selectedHabit(); h != nil {
				return deleteHabitCmd(p.storage, h.ID)
			}
		}
	}

	return cmd
}

// updateAddMode handles input while creating a habit.
func (p *HabitsPane) updateAddMode(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.inputKeys.Confirm):
			if p.addStep == 0 {
				p.newName = strings.TrimSpace(p.input.Value())
				if p.newName != "" {
					p.addStep = 1
					p.input.Reset()
					p.input.Placeholder = fmt.Sprintf("Days (default %d)", storage.DefaultHabitDays)
					p.input.CharLimit = 3
				}
				return nil
			}

			days := storage.DefaultHabitDays
			if v, err := strconv.Atoi(strings.TrimSpace(p.input.Value())); err == nil && v > 0 {
				days = v
			}
			name := p.newName
			p.resetInputMode()
			return addHabitCmd(p.storage, name, storage.PriorityLow, days, "default")

		case key.Matches(msg, p.inputKeys.Cancel):
			p.resetInputMode()
			return nil
		}
	}

	p.input, cmd = p.input.Update(msg)
	return cmd
}

// updateEditMode handles input while renaming a habit.
func (p *HabitsPane) updateEditMode(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.inputKeys.Confirm):
			name := strings.TrimSpace(p.input.Value())
			h := p.selectedHabit()
			id := p.editID
			p.resetInputMode()
			if name != "" && h != nil && h.ID == id {
				return updateHabitCmd(p.storage, id, name, h.Priority, h.Days, h.CardColor)
			}
			return nil

		case key.Matches(msg, p.inputKeys.Cancel):
			p.resetInputMode()
			return nil
		}
	}

	p.input, cmd = p.input.Update(msg)
	return cmd
}

// resetInputMode clears any add/edit state.
func (p *HabitsPane) resetInputMode() {
	p.adding = false
	p.editing = false
	p.addStep = 0
	p.newName = ""
	p.editID = ""
	p.input.Reset()
	p.input.Placeholder = "Habit name (e.g., Exercise)"
	p.input.CharLimit = 60
}

// View renders the habits pane.
func (p *HabitsPane) View() string {
	var b strings.Builder

	title := p.styles.PaneTitleStyle.Render("HABITS")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styleMutedText(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	if len(p.habitStore.Habits) == 0 && !p.IsAdding() {
		b.WriteString("\n")
		b.WriteString(p.styleMutedText("  No habits yet."))
		b.WriteString("\n")
		b.WriteString(p.styleMutedText("  Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")

		for i := range p.habitStore.Habits {
			habit := &p.habitStore.Habits[i]
			selected := i == p.cursor && p.focused && !p.IsAdding()

			prefix := "  "
			if selected {
				prefix = "▶ "
			}

			done := habit.CompletedDays()
			name := runewidth.Truncate(habit.Name, max(10, p.width-20), "..")
			line := fmt.Sprintf("%s%s  %d/%d", prefix, name, done, habit.Days)
			if habit.IsCompleted() {
				line += " " + p.styles.HabitStreakStyle.Render("complete!")
			}

			if selected {
				line = p.styles.TaskSelectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")

			// Progress grid for the selected habit
			if selected {
				b.WriteString("    " + p.renderGrid(habit))
				b.WriteString("\n")
			}
		}

		// Summary
		sum := storage.SummarizeHabits(p.habitStore)
		b.WriteString("\n")
		b.WriteString("  " + p.styles.StatLabelStyle.Render("Active today: ") +
			p.styles.StatValueStyle.Render(fmt.Sprintf("%d/%d", sum.CompletedToday, sum.TotalHabits)))
		b.WriteString("\n")
	}

	// Input field when adding or editing
	if p.IsAdding() {
		b.WriteString("\n")
		var prompt string
		switch {
		case p.editing:
			prompt = p.styles.InputPromptStyle.Render("Rename: ")
		case p.addStep == 0:
			prompt = p.styles.InputPromptStyle.Render("Name: ")
		default:
			prompt = p.styles.InputPromptStyle.Render("Days: ")
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

// renderGrid draws the day-by-day progress markers with the day cursor.
func (p *HabitsPane) renderGrid(habit *storage.Habit) string {
	var b strings.Builder
	perRow := max(7, (p.width-10)/2)

	for i := 0; i < habit.Days; i++ {
		marked := i < len(habit.Progress) && habit.Progress[i]
		switch {
		case i == p.dayCursor && p.focused:
			b.WriteString(p.styles.HabitCursorIcon)
		case marked:
			b.WriteString(p.styles.HabitDoneIcon)
		default:
			b.WriteString(p.styles.HabitUndoneIcon)
		}
		if (i+1)%perRow == 0 && i+1 < habit.Days {
			b.WriteString("\n    ")
		} else {
			b.WriteString(" ")
		}
	}
	return strings.TrimSuffix(b.String(), " ")
}

// styleMutedText applies muted style to text.
func (p *HabitsPane) styleMutedText(s string) string {
	return p.styles.StatLabelStyle.Render(s)
}

// Stats returns habit statistics for the title bar.
func (p *HabitsPane) Stats() (active, total int) {
	sum := storage.SummarizeHabits(p.habitStore)
	return sum.CompletedToday, sum.TotalHabits
}
