package ui

import (
	"hub/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds all application styles, initialized with theme configuration.
type Styles struct {
	// Colors
	ColorPrimary   lipgloss.Color
	ColorAccent    lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorDanger    lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorBgLight   lipgloss.Color
	ColorText      lipgloss.Color
	ColorTextMuted lipgloss.Color

	// Component styles
	TitleStyle       lipgloss.Style
	DateStyle        lipgloss.Style
	PaneStyle        lipgloss.Style
	PaneFocusedStyle lipgloss.Style
	PaneTitleStyle   lipgloss.Style

	TabActiveStyle   lipgloss.Style
	TabInactiveStyle lipgloss.Style

	TaskDoneStyle       lipgloss.Style
	TaskPendingStyle    lipgloss.Style
	TaskSelectedStyle   lipgloss.Style
	TaskCheckboxDone    string
	TaskCheckboxPending string

	// Priority badge styles
	PriorityHighStyle   lipgloss.Style
	PriorityMediumStyle lipgloss.Style
	PriorityLowStyle    lipgloss.Style

	// Due date indicator styles
	DueDateOverdueStyle lipgloss.Style
	DueDateTodayStyle   lipgloss.Style
	DueDateFutureStyle  lipgloss.Style

	HabitDoneIcon    string
	HabitUndoneIcon  string
	HabitCursorIcon  string
	HabitStreakStyle lipgloss.Style

	TimerRunningStyle lipgloss.Style
	TimerPausedStyle  lipgloss.Style
	TimerModeStyle    lipgloss.Style

	VideoWatchedIcon   string
	VideoUnwatchedIcon string
	PlaylistTitleStyle lipgloss.Style

	HelpStyle    lipgloss.Style
	HelpKeyStyle lipgloss.Style

	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	InputPromptStyle lipgloss.Style
	InputTextStyle   lipgloss.Style

	StatLabelStyle lipgloss.Style
	StatValueStyle lipgloss.Style

	ProgressFilledStyle lipgloss.Style
	ProgressEmptyStyle  lipgloss.Style
}

// NewStyles creates a new Styles instance from the given config.
// If a theme color is empty, it uses the appropriate default.
func NewStyles(cfg *config.Config) *Styles {
	return NewStylesFromTheme(&cfg.Theme)
}

// NewStylesFromTheme creates a new Styles instance from a ThemeConfig.
// If a theme color is empty, it uses the appropriate default.
func NewStylesFromTheme(theme *config.ThemeConfig) *Styles {
	s := &Styles{}

	// Initialize colors from config with fallbacks to defaults
	s.ColorPrimary = colorOrDefault(theme.Primary, "#7C3AED")
	s.ColorAccent = colorOrDefault(theme.Accent, "#10B981")
	s.ColorMuted = colorOrDefault(theme.Muted, "#6B7280")
	s.ColorDanger = colorOrDefault(theme.Danger, "#EF4444")

	// Fixed semantic colors (not configurable from theme)
	s.ColorWarning = lipgloss.Color("#F59E0B")
	s.ColorSuccess = lipgloss.Color("#10B981")
	s.ColorBgLight = lipgloss.Color("#374151")
	s.ColorText = lipgloss.Color("#F9FAFB")
	s.ColorTextMuted = lipgloss.Color("#9CA3AF")

	// Initialize all component styles
	s.initComponentStyles()

	return s
}

// colorOrDefault returns the lipgloss.Color from hex string, or default if empty.
func colorOrDefault(hex, defaultHex string) lipgloss.Color {
	if hex != "" {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(defaultHex)
}

// initComponentStyles initializes all component styles based on the color palette.
func (s *Styles) initComponentStyles() {
	// Title bar
	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorText).
		Background(s.ColorPrimary).
		Padding(0, 1)

	// Date in title bar
	s.DateStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	// Pane styles
	s.PaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorMuted).
		Padding(0, 1)

	s.PaneFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorPrimary).
		Padding(0, 1)

	s.PaneTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorPrimary).
		MarginBottom(1)

	// Tab bar
	s.TabActiveStyle = lipgloss.NewStyle().
		Foreground(s.ColorPrimary).
		Bold(true)

	s.TabInactiveStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	// Task styles
	s.TaskDoneStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Strikethrough(true)

	s.TaskPendingStyle = lipgloss.NewStyle().
		Foreground(s.ColorText)

	s.TaskSelectedStyle = lipgloss.NewStyle().
		Background(s.ColorBgLight).
		Foreground(s.ColorText).
		Bold(true)

	s.TaskCheckboxDone = lipgloss.NewStyle().Foreground(s.ColorSuccess).Render("[✓]")
	s.TaskCheckboxPending = lipgloss.NewStyle().Foreground(s.ColorMuted).Render("[ ]")

	// Priority badge styles
	s.PriorityHighStyle = lipgloss.NewStyle().
		Foreground(s.ColorDanger).
		Bold(true)

	s.PriorityMediumStyle = lipgloss.NewStyle().
		Foreground(s.ColorWarning)

	s.PriorityLowStyle = lipgloss.NewStyle().
		Foreground(s.ColorMuted)

	// Due date indicator styles
	s.DueDateOverdueStyle = lipgloss.NewStyle().
		Foreground(s.ColorDanger).
		Bold(true)

	s.DueDateTodayStyle = lipgloss.NewStyle().
		Foreground(s.ColorWarning)

	s.DueDateFutureStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	// Habit styles
	s.HabitDoneIcon = lipgloss.NewStyle().Foreground(s.ColorSuccess).Render("●")
	s.HabitUndoneIcon = lipgloss.NewStyle().Foreground(s.ColorMuted).Render("○")
	s.HabitCursorIcon = lipgloss.NewStyle().Foreground(s.ColorPrimary).Bold(true).Render("◎")

	s.HabitStreakStyle = lipgloss.NewStyle().
		Foreground(s.ColorWarning).
		Bold(true)

	// Timer styles
	s.TimerRunningStyle = lipgloss.NewStyle().
		Foreground(s.ColorSuccess).
		Bold(true)

	s.TimerPausedStyle = lipgloss.NewStyle().
		Foreground(s.ColorMuted)

	s.TimerModeStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent).
		Bold(true)

	// Playlist styles
	s.VideoWatchedIcon = lipgloss.NewStyle().Foreground(s.ColorSuccess).Render("[✓]")
	s.VideoUnwatchedIcon = lipgloss.NewStyle().Foreground(s.ColorMuted).Render("[ ]")

	s.PlaylistTitleStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Bold(true)

	// Help bar
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.HelpKeyStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent).
		Bold(true)

	// Status messages
	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.ColorSuccess).
		Italic(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.ColorDanger).
		Bold(true)

	// Input
	s.InputPromptStyle = lipgloss.NewStyle().
		Foreground(s.ColorPrimary).
		Bold(true)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(s.ColorText)

	// Summary stats
	s.StatLabelStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.StatValueStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Bold(true)

	// Progress bars
	s.ProgressFilledStyle = lipgloss.NewStyle().Foreground(s.ColorAccent)
	s.ProgressEmptyStyle = lipgloss.NewStyle().Foreground(s.ColorBgLight)
}

// RenderHelp renders help text with key bindings using the given styles.
func (s *Styles) RenderHelp(keys ...string) string {
	var result string
	for i := 0; i < len(keys); i += 2 {
		if i > 0 {
			result += "  "
		}
		key := keys[i]
		desc := keys[i+1]
		result += s.HelpKeyStyle.Render("["+key+"]") + " " + s.HelpStyle.Render(desc)
	}
	return result
}

// RenderProgressBar renders a horizontal progress bar of the given width.
// ratio is clamped to [0, 1].
func (s *Styles) RenderProgressBar(ratio float64, width int) string {
	if width < 1 {
		width = 10
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio * float64(width))
	empty := width - filled

	bar := s.ProgressFilledStyle.Render(repeatRune("█", filled)) +
		s.ProgressEmptyStyle.Render(repeatRune("░", empty))
	return bar
}

func repeatRune(r string, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, n*len(r))
	for i := 0; i < n; i++ {
		out = append(out, r...)
	}
	return string(out)
}
