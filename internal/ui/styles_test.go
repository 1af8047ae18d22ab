package ui

import (
	"strings"
	"testing"

	"hub/internal/config"

	"github.com/charmbracelet/lipgloss"
)

func TestNewStyles_UsesThemeColors(t *testing.T) {
	theme := &config.ThemeConfig{
		Primary: "#FF0000",
		Accent:  "#00FF00",
		Muted:   "#0000FF",
		Danger:  "#FFFF00",
	}

	styles := NewStylesFromTheme(theme)

	if styles.ColorPrimary != lipgloss.Color("#FF0000") {
		t.Errorf("ColorPrimary = %v, want #FF0000", styles.ColorPrimary)
	}
	if styles.ColorAccent != lipgloss.Color("#00FF00") {
		t.Errorf("ColorAccent = %v, want #00FF00", styles.ColorAccent)
	}
	if styles.ColorMuted != lipgloss.Color("#0000FF") {
		t.Errorf("ColorMuted = %v, want #0000FF", styles.ColorMuted)
	}
	if styles.ColorDanger != lipgloss.Color("#FFFF00") {
		t.Errorf("ColorDanger = %v, want #FFFF00", styles.ColorDanger)
	}
}

func TestNewStyles_UsesDefaults(t *testing.T) {
	styles := NewStylesFromTheme(&config.ThemeConfig{})

	if styles.ColorPrimary != lipgloss.Color("#7C3AED") {
		t.Errorf("ColorPrimary = %v, want default #7C3AED", styles.ColorPrimary)
	}
	if styles.ColorAccent != lipgloss.Color("#10B981") {
		t.Errorf("ColorAccent = %v, want default #10B981", styles.ColorAccent)
	}
	if styles.ColorMuted != lipgloss.Color("#6B7280") {
		t.Errorf("ColorMuted = %v, want default #6B7280", styles.ColorMuted)
	}
	if styles.ColorDanger != lipgloss.Color("#EF4444") {
		t.Errorf("ColorDanger = %v, want default #EF4444", styles.ColorDanger)
	}
}

func TestNewStyles_ComponentStylesInitialized(t *testing.T) {
	styles := NewStylesFromTheme(&config.ThemeConfig{Primary: "#FF0000"})

	if styles.TitleStyle.GetBackground() != lipgloss.Color("#FF0000") {
		t.Error("TitleStyle should use Primary color for background")
	}
	if styles.PaneFocusedStyle.GetBorderTopForeground() != lipgloss.Color("#FF0000") {
		t.Error("PaneFocusedStyle should use Primary color for border")
	}
	if styles.PaneTitleStyle.GetForeground() != lipgloss.Color("#FF0000") {
		t.Error("PaneTitleStyle should use Primary color for foreground")
	}
}

func TestNewStyles_FromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Theme.Primary = "#123456"

	styles := NewStyles(cfg)

	if styles.ColorPrimary != lipgloss.Color("#123456") {
		t.Errorf("ColorPrimary = %v, want #123456", styles.ColorPrimary)
	}
}

func TestRenderHelp(t *testing.T) {
	setupTest(t)
	styles := createTestStyles()

	output := styles.RenderHelp(
		"a", "add",
		"d", "done",
	)

	for _, want := range []string{"[a]", "add", "[d]", "done"} {
		if !strings.Contains(output, want) {
			t.Errorf("RenderHelp output missing %q: %q", want, output)
		}
	}
}

func TestRenderProgressBar(t *testing.T) {
	setupTest(t)
	styles := createTestStyles()

	bar := styles.RenderProgressBar(0.5, 10)
	if got := strings.Count(bar, "█"); got != 5 {
		t.Errorf("filled cells = %d, want 5", got)
	}
	if got := strings.Count(bar, "░"); got != 5 {
		t.Errorf("empty cells = %d, want 5", got)
	}

	// Out-of-range ratios are clamped.
	if got := strings.Count(styles.RenderProgressBar(2.0, 10), "█"); got != 10 {
		t.Errorf("filled cells = %d for clamped ratio, want 10", got)
	}
	if got := strings.Count(styles.RenderProgressBar(-1, 10), "░"); got != 10 {
		t.Errorf("empty cells = %d for clamped ratio, want 10", got)
	}
}
