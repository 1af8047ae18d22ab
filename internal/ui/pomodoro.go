// Package ui provides terminal user interface components for the hub app.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"hub/internal/config"
	"hub/internal/notify"
	"hub/internal/pomodoro"
	"hub/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PomodoroPane drives the focus timer. The countdown itself lives in the
// pomodoro engine; this pane feeds it one tick per second and persists
// completed work sessions.
type PomodoroPane struct {
	engine   *pomodoro.Engine
	stats    *storage.PomodoroStats
	settings *storage.PomodoroSettings
	focused  bool
	width    int
	height   int

	// Settings edit flow
	editing  bool
	editStep int // 0 = work, 1 = short break, 2 = long break
	input    textinput.Model
	newWork  int
	newShort int

	storage  *storage.Storage
	notifier notify.Notifier
	sound    bool
	styles   *Styles

	// Key bindings
	keys      PomodoroKeyMap
	inputKeys InputKeyMap
}

// NewPomodoroPane creates a new focus timer pane.
func NewPomodoroPane(store *storage.Storage, styles *Styles) *PomodoroPane {
	return NewPomodoroPaneWithKeys(store, styles, &config.KeysConfig{}, notify.Disabled(), false)
}

// NewPomodoroPaneWithKeys creates a new focus timer pane with custom key
// bindings and a notifier for session-complete alerts.
func NewPomodoroPaneWithKeys(store *storage.Storage, styles *Styles, keyCfg *config.KeysConfig, notifier notify.Notifier, sound bool) *PomodoroPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	if notifier == nil {
		notifier = notify.Disabled()
	}
	ti := textinput.New()
	ti.Placeholder = "Work minutes"
	ti.CharLimit = 3
	ti.Width = 10

	defaults := storage.DefaultPomodoroSettings()
	engine, err := pomodoro.New(defaults.WorkDuration, defaults.ShortBreakDuration, defaults.LongBreakDuration)
	if err != nil {
		// Defaults are known-valid; this only guards future constant changes.
		panic(err)
	}

	return &PomodoroPane{
		engine:    engine,
		stats:     &storage.PomodoroStats{},
		settings:  &defaults,
		input:     ti,
		storage:   store,
		notifier:  notifier,
		sound:     sound,
		styles:    styles,
		keys:      NewPomodoroKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// LoadCmd returns a command that loads timer settings and stats.
func (p *PomodoroPane) LoadCmd() tea.Cmd {
	return tea.Batch(
		loadPomodoroSettingsCmd(p.storage),
		loadPomodoroStatsCmd(p.storage),
	)
}

// SetSize sets the pane dimensions.
func (p *PomodoroPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets whether this pane is focused.
func (p *PomodoroPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *PomodoroPane) IsFocused() bool {
	return p.focused
}

// IsAdding returns whether the settings editor is open.
func (p *PomodoroPane) IsAdding() bool {
	return p.editing
}

// IsRunning returns whether the countdown is ticking.
func (p *PomodoroPane) IsRunning() bool {
	return p.engine.Running()
}

// Update handles messages for the focus timer pane.
func (p *PomodoroPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pomodoroSettingsLoadedMsg:
		if msg.settings != nil {
			p.settings = msg.settings
			// Stored settings passed validation on save.
			_ = p.engine.ApplySettings(msg.settings.WorkDuration, msg.settings.ShortBreakDuration, msg.settings.LongBreakDuration)
		}
		return nil

	case pomodoroSettingsSavedMsg:
		if msg.err == nil && msg.settings != nil {
			p.settings = msg.settings
			_ = p.engine.ApplySettings(msg.settings.WorkDuration, msg.settings.ShortBreakDuration, msg.settings.LongBreakDuration)
		}
		return nil

	case pomodoroStatsLoadedMsg:
		if msg.stats != nil {
			p.stats = msg.stats
		}
		return nil

	case sessionRecordedMsg:
		if msg.err == nil && msg.stats != nil {
			p.stats = msg.stats
			// Every 4th session earns the long break.
			p.engine.SwitchMode(pomodoro.NextMode(pomodoro.ModeWork, msg.stats.SessionsToday))
		}
		return nil

	case tickMsg:
		return p.handleTick()
	}

	if p.editing {
		return p.updateSettingsMode(msg)
	}

	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.StartPause):
			if p.engine.Running() {
				p.engine.Pause()
			} else {
				p.engine.Start()
			}

		case key.Matches(msg, p.keys.SwitchMode):
			// Switching abandons the session in progress.
			p.engine.SwitchMode(nextManualMode(p.engine.Mode()))

		case key.Matches(msg, p.keys.Reset):
			p.engine.Reset()

		case key.Matches(msg, p.keys.Settings):
			p.editing = true
			p.editStep = 0
			p.input.Placeholder = "Work minutes"
			p.input.SetValue(strconv.Itoa(p.settings.WorkDuration))
			p.input.Focus()
			return textinput.Blink
		}
	}

	return nil
}

// handleTick advances the countdown by one second and reacts to completion.
func (p *PomodoroPane) handleTick() tea.Cmd {
	mode := p.engine.Mode()
	if !p.engine.Tick() {
		return nil
	}

	if mode == pomodoro.ModeWork {
		p.sendNotification("Focus session complete", "Time for a break.")
		return recordSessionCmd(p.storage, p.engine.WorkMinutes())
	}

	p.sendNotification("Break over", "Back to work.")
	p.engine.SwitchMode(pomodoro.NextMode(mode, p.stats.SessionsToday))
	return nil
}

// sendNotification delivers a desktop notification, honoring the sound flag.
func (p *PomodoroPane) sendNotification(title, message string) {
	if p.sound {
		_ = p.notifier.SendWithSound(title, message)
		return
	}
	_ = p.notifier.Send(title, message)
}

// nextManualMode cycles work -> short break -> long break -> work.
func nextManualMode(m pomodoro.Mode) pomodoro.Mode {
	switch m {
	case pomodoro.ModeWork:
		return pomodoro.ModeShortBreak
	case pomodoro.ModeShortBreak:
		return pomodoro.ModeLongBreak
	default:
		return pomodoro.ModeWork
	}
}

// updateSettingsMode handles the three-step duration editor.
func (p *PomodoroPane) updateSettingsMode(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.inputKeys.Confirm):
			value, err := strconv.Atoi(strings.TrimSpace(p.input.Value()))
			if err != nil || value <= 0 {
				// Keep the editor open until the value parses.
				return nil
			}

			switch p.editStep {
			case 0:
				p.newWork = value
				p.editStep = 1
				p.input.SetValue(strconv.Itoa(p.settings.ShortBreakDuration))
				p.input.Placeholder = "Short break minutes"
				return nil
			case 1:
				p.newShort = value
				p.editStep = 2
				p.input.SetValue(strconv.Itoa(p.settings.LongBreakDuration))
				p.input.Placeholder = "Long break minutes"
				return nil
			default:
				settings := &storage.PomodoroSettings{
					WorkDuration:       p.newWork,
					ShortBreakDuration: p.newShort,
					LongBreakDuration:  value,
				}
				p.resetSettingsMode()
				return savePomodoroSettingsCmd(p.storage, settings)
			}

		case key.Matches(msg, p.inputKeys.Cancel):
			p.resetSettingsMode()
			return nil
		}
	}

	p.input, cmd = p.input.Update(msg)
	return cmd
}

// resetSettingsMode clears the settings editor state.
func (p *PomodoroPane) resetSettingsMode() {
	p.editing = false
	p.editStep = 0
	p.newWork = 0
	p.newShort = 0
	p.input.Reset()
	p.input.Placeholder = "Work minutes"
}

// View renders the focus timer pane.
func (p *PomodoroPane) View() string {
	var b strings.Builder

	title := p.styles.PaneTitleStyle.Render("FOCUS")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n\n")

	// Mode and clock
	mode := p.styles.TimerModeStyle.Render(p.engine.Mode().String())
	b.WriteString("  " + mode)
	b.WriteString("\n\n")

	clock := p.engine.Clock()
	if p.engine.Running() {
		b.WriteString("    " + p.styles.TimerRunningStyle.Render(clock))
	} else {
		b.WriteString("    " + p.styles.TimerPausedStyle.Render(clock+"  (paused)"))
	}
	b.WriteString("\n\n")

	// Progress bar
	barWidth := p.width - 8
	if barWidth < 10 {
		barWidth = 20
	}
	b.WriteString("  " + p.styles.RenderProgressBar(p.engine.Progress(), barWidth))
	b.WriteString("\n\n")

	// Daily stats
	b.WriteString("  " + p.styles.StatLabelStyle.Render("Sessions: ") +
		p.styles.StatValueStyle.Render(strconv.Itoa(p.stats.SessionsToday)))
	b.WriteString("\n")
	b.WriteString("  " + p.styles.StatLabelStyle.Render("Focus:    ") +
		p.styles.StatValueStyle.Render(fmt.Sprintf("%dm", p.stats.TotalFocusTime)))
	b.WriteString("\n")
	if p.stats.CurrentStreak > 0 {
		b.WriteString("  " + p.styles.StatLabelStyle.Render("Streak:   ") +
			p.styles.HabitStreakStyle.Render(strconv.Itoa(p.stats.CurrentStreak)))
		b.WriteString("\n")
	}

	// Settings editor
	if p.editing {
		b.WriteString("\n")
		var prompt string
		switch p.editStep {
		case 0:
			prompt = p.styles.InputPromptStyle.Render("Work: ")
		case 1:
			prompt = p.styles.InputPromptStyle.Render("Short: ")
		default:
			prompt = p.styles.InputPromptStyle.Render("Long: ")
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

// StatusLine returns a compact timer summary for the title bar.
func (p *PomodoroPane) StatusLine() string {
	if !p.engine.Running() {
		return ""
	}
	return p.styles.TimerRunningStyle.Render("▶ " + p.engine.Mode().String() + " " + p.engine.Clock())
}
