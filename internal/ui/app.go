// Package ui provides terminal user interface components for the hub app.
// This file contains the main App model which coordinates the four tracker
// tabs and routes messages using the Bubble Tea architecture.
package ui

import (
	"fmt"
	"strings"
	"time"

	"hub/internal/config"
	"hub/internal/notify"
	"hub/internal/storage"
	"hub/internal/youtube"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TabID identifies each tracker tab.
type TabID int

const (
	TabHabits TabID = iota
	TabTasks
	TabFocus
	TabPlaylists
)

// AppConfig holds user configuration for the app behavior.
type AppConfig struct {
	Keys             *config.KeysConfig
	ConfirmDeletions bool
	Notifier         notify.Notifier
	Sound            bool
	YouTube          *youtube.Client
}

// App is the main application model that coordinates all tabs.
type App struct {
	storage       *storage.Storage
	styles        *Styles
	config        *AppConfig
	habitsPane    *HabitsPane
	tasksPane     *TasksPane
	pomodoroPane  *PomodoroPane
	playlistsPane *PlaylistsPane
	helpOverlay   *HelpOverlay
	confirmDel    *confirmDeleteState
	activeTab     TabID
	showHelp      bool
	width         int
	height        int
	status        string
	statusErr     bool
	statusUntil   time.Time
	quitting      bool

	// Key bindings
	keys     GlobalKeyMap
	helpKeys HelpKeyMap
}

type confirmDeleteState struct {
	title string
	body  string
	cmd   tea.Cmd
}

// NewApp creates a new application. Data loading is deferred to Init()
// to keep the constructor non-blocking.
func NewApp(store *storage.Storage, styles *Styles, cfg *AppConfig) *App {
	if cfg == nil {
		cfg = &AppConfig{
			Keys:             &config.KeysConfig{},
			ConfirmDeletions: true,
		}
	}
	if cfg.Keys == nil {
		cfg.Keys = &config.KeysConfig{}
	}
	if cfg.Notifier == nil {
		cfg.Notifier = notify.Disabled()
	}
	if cfg.YouTube == nil {
		cfg.YouTube = youtube.NewClient("")
	}

	habitsPane := NewHabitsPaneWithKeys(store, styles, cfg.Keys)
	tasksPane := NewTasksPaneWithKeys(store, styles, cfg.Keys)
	pomodoroPane := NewPomodoroPaneWithKeys(store, styles, cfg.Keys, cfg.Notifier, cfg.Sound)
	playlistsPane := NewPlaylistsPaneWithKeys(store, cfg.YouTube, styles, cfg.Keys)
	helpOverlay := NewHelpOverlay(styles)

	app := &App{
		storage:       store,
		styles:        styles,
		config:        cfg,
		habitsPane:    habitsPane,
		tasksPane:     tasksPane,
		pomodoroPane:  pomodoroPane,
		playlistsPane: playlistsPane,
		helpOverlay:   helpOverlay,
		activeTab:     TabHabits,
		keys:          NewGlobalKeyMap(cfg.Keys),
		helpKeys:      DefaultHelpKeyMap(),
	}

	habitsPane.SetFocused(true)

	return app
}

// tickMsg is sent once per second. It drives the focus timer countdown and
// the status bar expiry.
type tickMsg time.Time

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the app and loads all data asynchronously.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		a.habitsPane.LoadHabitsCmd(),
		a.tasksPane.LoadTasksCmd(),
		a.pomodoroPane.LoadCmd(),
		a.playlistsPane.LoadPlaylistsCmd(),
	)
}

// Update handles all messages and routes them appropriately.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Route async messages to their panes first (before key handling).
	// Storage operation results are processed regardless of the active tab.
	switch msg := msg.(type) {
	case habitsLoadedMsg, habitAddedMsg, habitToggledMsg, habitUpdatedMsg, habitResetMsg, habitDeletedMsg:
		a.reportAsyncError(msg)
		return a, a.habitsPane.Update(msg)

	case tasksLoadedMsg, taskAddedMsg, taskToggledMsg, taskUpdatedMsg, taskDeletedMsg, tasksSortedMsg:
		a.reportAsyncError(msg)
		return a, a.tasksPane.Update(msg)

	case pomodoroSettingsLoadedMsg, pomodoroSettingsSavedMsg, pomodoroStatsLoadedMsg, sessionRecordedMsg:
		a.reportAsyncError(msg)
		return a, a.pomodoroPane.Update(msg)

	case playlistsLoadedMsg, videoToggledMsg, playlistExpandedMsg, playlistDeletedMsg:
		a.reportAsyncError(msg)
		return a, a.playlistsPane.Update(msg)

	case playlistImportedMsg:
		if msg.err != nil {
			a.SetStatus("Import: "+msg.err.Error(), true)
		} else if msg.playlist != nil {
			a.SetStatus(fmt.Sprintf("Imported %q (%d videos)", msg.playlist.Title, len(msg.playlist.Videos)), false)
		}
		return a, a.playlistsPane.Update(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.confirmDel != nil {
			switch msg.String() {
			case "y", "Y", "enter":
				cmd := a.confirmDel.cmd
				a.confirmDel = nil
				return a, cmd
			case "n", "N", "esc":
				a.confirmDel = nil
				a.SetStatus("Canceled", false)
				return a, nil
			default:
				return a, nil
			}
		}

		// Help overlay takes priority
		if a.showHelp {
			if key.Matches(msg, a.helpKeys.Close) {
				a.showHelp = false
			}
			return a, nil
		}

		if !a.inInputMode() {
			if cmd, handled := a.interceptDelete(msg); handled {
				return a, cmd
			}

			// Global keys only when not in input mode
			switch {
			case key.Matches(msg, a.keys.Quit):
				a.quitting = true
				return a, tea.Quit

			case key.Matches(msg, a.keys.Help):
				a.showHelp = true
				return a, nil

			case key.Matches(msg, a.keys.NextTab):
				a.setActiveTab((a.activeTab + 1) % 4)
				return a, nil

			case key.Matches(msg, a.keys.Tab1):
				a.setActiveTab(TabHabits)
				return a, nil

			case key.Matches(msg, a.keys.Tab2):
				a.setActiveTab(TabTasks)
				return a, nil

			case key.Matches(msg, a.keys.Tab3):
				a.setActiveTab(TabFocus)
				return a, nil

			case key.Matches(msg, a.keys.Tab4):
				a.setActiveTab(TabPlaylists)
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tickMsg:
		if a.status != "" && !a.statusUntil.IsZero() && time.Now().After(a.statusUntil) {
			a.status = ""
			a.statusErr = false
			a.statusUntil = time.Time{}
		}
		// The focus timer keeps ticking even when another tab is active.
		return a, tea.Batch(tickCmd(), a.pomodoroPane.Update(msg))
	}

	// Forward to the active pane (only if help is not shown)
	if !a.showHelp {
		return a, a.activePane().Update(msg)
	}

	return a, nil
}

// pane is the per-tab surface the app coordinates.
type pane interface {
	Update(tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	SetFocused(focused bool)
	IsAdding() bool
}

// activePane returns the pane for the active tab.
func (a *App) activePane() pane {
	switch a.activeTab {
	case TabTasks:
		return a.tasksPane
	case TabFocus:
		return a.pomodoroPane
	case TabPlaylists:
		return a.playlistsPane
	default:
		return a.habitsPane
	}
}

// inInputMode reports whether any pane owns the keyboard.
func (a *App) inInputMode() bool {
	return a.habitsPane.IsAdding() || a.tasksPane.IsAdding() ||
		a.pomodoroPane.IsAdding() || a.playlistsPane.IsAdding()
}

// interceptDelete shows a confirmation dialog for destructive deletes when
// enabled. Returns handled=true if the key was consumed.
func (a *App) interceptDelete(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !a.config.ConfirmDeletions {
		return nil, false
	}

	switch a.activeTab {
	case TabHabits:
		if key.Matches(msg, a.habitsPane.keys.Delete) {
			h := a.habitsPane.selectedHabit()
			if h == nil {
				a.SetStatus("No habit selected", true)
				return nil, true
			}
			a.confirmDel = &confirmDeleteState{
				title: "Delete habit?",
				body:  truncateText(h.Name, 60),
				cmd:   deleteHabitCmd(a.storage, h.ID),
			}
			return nil, true
		}

	case TabTasks:
		if key.Matches(msg, a.tasksPane.keys.Delete) {
			t := a.tasksPane.selectedTask()
			if t == nil {
				a.SetStatus("No task selected", true)
				return nil, true
			}
			a.confirmDel = &confirmDeleteState{
				title: "Delete task?",
				body:  truncateText(t.Name, 60),
				cmd:   deleteTaskCmd(a.storage, t.ID),
			}
			return nil, true
		}

	case TabPlaylists:
		if key.Matches(msg, a.playlistsPane.keys.Delete) {
			row := a.playlistsPane.selectedRow()
			if row == nil {
				a.SetStatus("No playlist selected", true)
				return nil, true
			}
			playlist := &a.playlistsPane.playlistStore.Playlists[row.playlist]
			a.confirmDel = &confirmDeleteState{
				title: "Delete playlist?",
				body:  truncateText(playlist.Title, 60),
				cmd:   deletePlaylistCmd(a.storage, playlist.ID),
			}
			return nil, true
		}
	}

	return nil, false
}

// reportAsyncError surfaces storage errors from async messages in the
// status bar. Messages without an error pass through silently.
func (a *App) reportAsyncError(msg tea.Msg) {
	var err error
	var label string

	switch msg := msg.(type) {
	case habitsLoadedMsg:
		label, err = "Habits", msg.err
	case habitAddedMsg:
		label, err = "Add habit", msg.err
	case habitToggledMsg:
		label, err = "Toggle habit", msg.err
	case habitUpdatedMsg:
		label, err = "Update habit", msg.err
	case habitResetMsg:
		label, err = "Reset habit", msg.err
	case habitDeletedMsg:
		label, err = "Delete habit", msg.err
	case tasksLoadedMsg:
		label, err = "Tasks", msg.err
	case taskAddedMsg:
		label, err = "Add task", msg.err
	case taskToggledMsg:
		label, err = "Toggle task", msg.err
	case taskUpdatedMsg:
		label, err = "Update task", msg.err
	case taskDeletedMsg:
		label, err = "Delete task", msg.err
	case tasksSortedMsg:
		label, err = "Sort tasks", msg.err
	case pomodoroSettingsLoadedMsg:
		label, err = "Timer settings", msg.err
	case pomodoroSettingsSavedMsg:
		label, err = "Save settings", msg.err
	case pomodoroStatsLoadedMsg:
		label, err = "Focus stats", msg.err
	case sessionRecordedMsg:
		label, err = "Record session", msg.err
	case playlistsLoadedMsg:
		label, err = "Playlists", msg.err
	case videoToggledMsg:
		label, err = "Toggle video", msg.err
	case playlistExpandedMsg:
		label, err = "Expand playlist", msg.err
	case playlistDeletedMsg:
		label, err = "Delete playlist", msg.err
	}

	if err != nil {
		a.SetStatus(label+": "+err.Error(), true)
	}
}

// setActiveTab sets the active tab and updates focus states.
func (a *App) setActiveTab(tab TabID) {
	a.activeTab = tab

	a.habitsPane.SetFocused(tab == TabHabits)
	a.tasksPane.SetFocused(tab == TabTasks)
	a.pomodoroPane.SetFocused(tab == TabFocus)
	a.playlistsPane.SetFocused(tab == TabPlaylists)
}

// updateLayout recalculates pane sizes based on terminal dimensions.
func (a *App) updateLayout() {
	// Leave room for title bar (1), tab bar (1), help bar (1) and borders.
	contentHeight := a.height - 5
	if contentHeight < 8 {
		contentHeight = 8
	}

	paneWidth := a.width - 4
	if paneWidth < 20 {
		paneWidth = 20
	}

	a.habitsPane.SetSize(paneWidth, contentHeight)
	a.tasksPane.SetSize(paneWidth, contentHeight)
	a.pomodoroPane.SetSize(paneWidth, contentHeight)
	a.playlistsPane.SetSize(paneWidth, contentHeight)
	a.helpOverlay.SetSize(a.width, a.height)
}

// View renders the entire app.
func (a *App) View() string {
	if a.quitting {
		return a.renderGoodbye()
	}

	if a.confirmDel != nil {
		return a.renderConfirmDelete()
	}

	if a.showHelp {
		return a.helpOverlay.View()
	}

	var b strings.Builder

	b.WriteString(a.renderTitleBar())
	b.WriteString("\n")
	b.WriteString(a.renderTabs())
	b.WriteString("\n")
	b.WriteString(a.activePane().View())
	b.WriteString("\n")
	b.WriteString(a.renderHelpBar())

	return b.String()
}

func (a *App) renderConfirmDelete() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorDanger).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorDanger).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	hintStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.confirmDel.title))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(a.confirmDel.body))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[y/enter] delete    [n/esc] cancel"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

// renderTabs renders the tab bar.
func (a *App) renderTabs() string {
	tabs := []struct {
		id    TabID
		label string
	}{
		{TabHabits, "Habits"},
		{TabTasks, "Tasks"},
		{TabFocus, "Focus"},
		{TabPlaylists, "Playlists"},
	}

	var parts []string
	for _, tab := range tabs {
		label := tab.label
		if tab.id == a.activeTab {
			label = a.styles.TabActiveStyle.Render("[" + label + "]")
		} else {
			label = a.styles.TabInactiveStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}

	tabBar := strings.Join(parts, "  ")
	padding := (a.width - lipgloss.Width(tabBar)) / 2
	if padding > 0 {
		tabBar = strings.Repeat(" ", padding) + tabBar
	}

	return tabBar
}

// renderGoodbye shows a short exit message with today's progress.
func (a *App) renderGoodbye() string {
	tasksDone, tasksTotal := a.tasksPane.Stats()
	habitsActive, habitsTotal := a.habitsPane.Stats()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  See you later!\n")
	b.WriteString("\n")

	if tasksTotal > 0 || habitsTotal > 0 {
		b.WriteString("  Today's progress:\n")
		if tasksTotal > 0 {
			pct := (tasksDone * 100) / tasksTotal
			b.WriteString(fmt.Sprintf("     Tasks:  %d/%d (%d%%)\n", tasksDone, tasksTotal, pct))
		}
		if habitsTotal > 0 {
			pct := (habitsActive * 100) / habitsTotal
			b.WriteString(fmt.Sprintf("     Habits: %d/%d (%d%%)\n", habitsActive, habitsTotal, pct))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderTitleBar creates the top title bar with stats and timer status.
func (a *App) renderTitleBar() string {
	title := a.styles.TitleStyle.Render(" hub ")

	tasksDone, tasksTotal := a.tasksPane.Stats()
	habitsActive, habitsTotal := a.habitsPane.Stats()

	var statsItems []string
	if tasksTotal > 0 {
		statsItems = append(statsItems, fmt.Sprintf("Tasks: %d/%d", tasksDone, tasksTotal))
	}
	if habitsTotal > 0 {
		statsItems = append(statsItems, fmt.Sprintf("Habits: %d/%d", habitsActive, habitsTotal))
	}
	stats := a.styles.StatLabelStyle.Render(strings.Join(statsItems, "  "))

	timerStatus := a.pomodoroPane.StatusLine()

	now := time.Now()
	date := a.styles.DateStyle.Render(now.Format("Mon Jan 2 · 15:04"))

	usedWidth := lipgloss.Width(title) + lipgloss.Width(stats) + lipgloss.Width(timerStatus) + lipgloss.Width(date)
	spacerWidth := a.width - usedWidth - 6
	if spacerWidth < 2 {
		spacerWidth = 2
	}

	var parts []string
	parts = append(parts, title)
	if stats != "" {
		parts = append(parts, "  "+stats)
	}
	parts = append(parts, strings.Repeat(" ", spacerWidth/2))
	if timerStatus != "" {
		parts = append(parts, timerStatus)
	}
	parts = append(parts, strings.Repeat(" ", spacerWidth-spacerWidth/2))
	parts = append(parts, date)

	return strings.Join(parts, "")
}

// renderHelpBar creates the bottom help bar with context-sensitive hints.
func (a *App) renderHelpBar() string {
	if a.status != "" {
		if a.statusErr {
			return a.styles.ErrorStyle.Render(a.status)
		}
		return a.styles.StatusStyle.Render(a.status)
	}

	if a.inInputMode() {
		return a.styles.RenderHelp(
			"enter", "next/save",
			"esc", "cancel",
		)
	}

	switch a.activeTab {
	case TabHabits:
		return a.styles.RenderHelp(
			"a", "add",
			"space", "toggle day",
			"h/l", "day",
			"x", "del",
			"tab", "next",
			"?", "help",
		)
	case TabTasks:
		return a.styles.RenderHelp(
			"a", "add",
			"d", "done",
			"s", "sort",
			"f", "filter",
			"x", "del",
			"?", "help",
		)
	case TabFocus:
		if a.pomodoroPane.IsRunning() {
			return a.styles.RenderHelp(
				"space", "pause",
				"m", "mode",
				"r", "reset",
				"?", "help",
			)
		}
		return a.styles.RenderHelp(
			"space", "start",
			"m", "mode",
			"o", "settings",
			"?", "help",
		)
	case TabPlaylists:
		return a.styles.RenderHelp(
			"a", "import",
			"space", "expand/watch",
			"x", "del",
			"?", "help",
		)
	}

	return ""
}

// SetStatus sets a status message to display to the user.
func (a *App) SetStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	ttl := 5 * time.Second
	if isErr {
		ttl = 8 * time.Second
	}
	a.statusUntil = time.Now().Add(ttl)
}

// truncateText shortens s to at most n runes, appending an ellipsis.
func truncateText(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// Run starts the Bubble Tea program with the given storage backend, styles, and config.
func Run(store *storage.Storage, styles *Styles, cfg *AppConfig) error {
	app := NewApp(store, styles, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
