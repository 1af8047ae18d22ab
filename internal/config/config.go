// Package config handles configuration loading and defaults for the hub app.
// Configuration is loaded from XDG-compliant paths (typically ~/.config/hub/config.yaml).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"hub/internal/fsutil"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// DataDir overrides the default data directory (~/.hub)
	DataDir string `yaml:"data_dir,omitempty"`

	// Theme customizes the visual appearance
	Theme ThemeConfig `yaml:"theme,omitempty"`

	// Keys customizes keyboard shortcuts
	Keys KeysConfig `yaml:"keys,omitempty"`

	// UX customizes user experience settings
	UX UXConfig `yaml:"ux,omitempty"`

	// Notifications configures desktop notifications
	Notifications NotificationConfig `yaml:"notifications,omitempty"`

	// YouTube configures the playlist-data provider
	YouTube YouTubeConfig `yaml:"youtube,omitempty"`
}

// NotificationConfig defines desktop notification settings.
type NotificationConfig struct {
	// Enabled enables/disables notifications
	Enabled bool `yaml:"enabled,omitempty"`

	// Sound enables notification sounds
	Sound bool `yaml:"sound,omitempty"`
}

// YouTubeConfig defines the playlist-data provider settings. The API key
// is never shipped with the binary: it comes from this file or from the
// YOUTUBE_API_KEY environment variable, which wins when both are set.
type YouTubeConfig struct {
	APIKey string `yaml:"api_key,omitempty"`
}

// ThemeConfig defines color and style settings.
type ThemeConfig struct {
	// Primary color for focused elements (hex, e.g., "#FF5733")
	Primary string `yaml:"primary,omitempty"`

	// Accent color for highlights (hex)
	Accent string `yaml:"accent,omitempty"`

	// Muted color for secondary text (hex)
	Muted string `yaml:"muted,omitempty"`

	// Danger color for overdue markers and destructive prompts (hex)
	Danger string `yaml:"danger,omitempty"`
}

// KeysConfig defines customizable keyboard shortcuts.
// Each field accepts a comma-separated list of key bindings.
// Examples: "q,ctrl+c", "tab", "j,down"
type KeysConfig struct {
	// Global keys
	Quit    string `yaml:"quit,omitempty"`     // default: "q,ctrl+c"
	Help    string `yaml:"help,omitempty"`     // default: "?"
	NextTab string `yaml:"next_tab,omitempty"` // default: "tab"
	Tab1    string `yaml:"tab_1,omitempty"`    // default: "1"
	Tab2    string `yaml:"tab_2,omitempty"`    // default: "2"
	Tab3    string `yaml:"tab_3,omitempty"`    // default: "3"
	Tab4    string `yaml:"tab_4,omitempty"`    // default: "4"

	// Navigation keys
	Up     string `yaml:"up,omitempty"`     // default: "k,up"
	Down   string `yaml:"down,omitempty"`   // default: "j,down"
	Left   string `yaml:"left,omitempty"`   // default: "h,left"
	Right  string `yaml:"right,omitempty"`  // default: "l,right"
	Top    string `yaml:"top,omitempty"`    // default: "g"
	Bottom string `yaml:"bottom,omitempty"` // default: "G"

	// Item keys
	Add    string `yaml:"add,omitempty"`    // default: "a"
	Edit   string `yaml:"edit,omitempty"`   // default: "e"
	Toggle string `yaml:"toggle,omitempty"` // default: "d,enter,space"
	Delete string `yaml:"delete,omitempty"` // default: "x"
	Reset  string `yaml:"reset,omitempty"`  // default: "r"

	// Task keys
	Sort   string `yaml:"sort,omitempty"`   // default: "s"
	Filter string `yaml:"filter,omitempty"` // default: "f"

	// Timer keys
	StartPause string `yaml:"start_pause,omitempty"` // default: "space,enter"
	SwitchMode string `yaml:"switch_mode,omitempty"` // default: "m"
	Settings   string `yaml:"settings,omitempty"`    // default: "o"

	// Input keys
	Confirm string `yaml:"confirm,omitempty"` // default: "enter"
	Cancel  string `yaml:"cancel,omitempty"`  // default: "esc"
}

// UXConfig defines user experience settings.
type UXConfig struct {
	// ConfirmDeletions shows confirmation dialogs before deleting items
	ConfirmDeletions bool `yaml:"confirm_deletions,omitempty"` // default: true
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir: defaultDataDir(),
		Theme: ThemeConfig{
			Primary: "#7C3AED", // Violet
			Accent:  "#10B981", // Emerald
			Muted:   "#6B7280", // Gray
			Danger:  "#EF4444", // Red
		},
		Keys: KeysConfig{
			// Defaults are empty strings, which means use built-in defaults
		},
		UX: UXConfig{
			ConfirmDeletions: true,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   false,
		},
	}
}

// defaultDataDir returns the default data directory path.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hub"
	}
	return filepath.Join(home, ".hub")
}

// configDir returns the configuration directory path (XDG compliant).
func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hub")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hub")
}

// configPath returns the path to the config file.
func configPath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads configuration from disk, merging with defaults, then
// applies environment overrides (HUB_DATA_DIR, YOUTUBE_API_KEY).
// If no config file exists, returns default configuration.
func Load() (*Config, error) {
	cfg := Default()

	path := configPath()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if err == nil {
			var userCfg Config
			if err := yaml.Unmarshal(data, &userCfg); err != nil {
				return nil, err
			}

			var doc yaml.Node
			_ = yaml.Unmarshal(data, &doc) // best-effort; fall back to conservative merge if this fails

			cfg.mergeFromYAML(&userCfg, &doc)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if dir := os.Getenv("HUB_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}
	if key := os.Getenv("YOUTUBE_API_KEY"); key != "" {
		c.YouTube.APIKey = key
	}
}

// mergeNonEmpty applies non-empty values from other to c.
// It intentionally does not touch booleans (those require presence-aware merging).
func (c *Config) mergeNonEmpty(other *Config) {
	if other.DataDir != "" {
		c.DataDir = other.DataDir
	}

	// Theme merging
	if other.Theme.Primary != "" {
		c.Theme.Primary = other.Theme.Primary
	}
	if other.Theme.Accent != "" {
		c.Theme.Accent = other.Theme.Accent
	}
	if other.Theme.Muted != "" {
		c.Theme.Muted = other.Theme.Muted
	}
	if other.Theme.Danger != "" {
		c.Theme.Danger = other.Theme.Danger
	}

	// Keys merging
	if other.Keys.Quit != "" {
		c.Keys.Quit = other.Keys.Quit
	}
	if other.Keys.Help != "" {
		c.Keys.Help = other.Keys.Help
	}
	if other.Keys.NextTab != "" {
		c.Keys.NextTab = other.Keys.NextTab
	}
	if other.Keys.Tab1 != "" {
		c.Keys.Tab1 = other.Keys.Tab1
	}
	if other.Keys.Tab2 != "" {
		c.Keys.Tab2 = other.Keys.Tab2
	}
	if other.Keys.Tab3 != "" {
		c.Keys.Tab3 = other.Keys.Tab3
	}
	if other.Keys.Tab4 != "" {
		c.Keys.Tab4 = other.Keys.Tab4
	}
	if other.Keys.Up != "" {
		c.Keys.Up = other.Keys.Up
	}
	if other.Keys.Down != "" {
		c.Keys.Down = other.Keys.Down
	}
	if other.Keys.Left != "" {
		c.Keys.Left = other.Keys.Left
	}
	if other.Keys.Right != "" {
		c.Keys.Right = other.Keys.Right
	}
	if other.Keys.Top != "" {
		c.Keys.Top = other.Keys.Top
	}
	if other.Keys.Bottom != "" {
		c.Keys.Bottom = other.Keys.Bottom
	}
	if other.Keys.Add != "" {
		c.Keys.Add = other.Keys.Add
	}
	if other.Keys.Edit != "" {
		c.Keys.Edit = other.Keys.Edit
	}
	if other.Keys.Toggle != "" {
		c.Keys.Toggle = other.Keys.Toggle
	}
	if other.Keys.Delete != "" {
		c.Keys.Delete = other.Keys.Delete
	}
	if other.Keys.Reset != "" {
		c.Keys.Reset = other.Keys.Reset
	}
	if other.Keys.Sort != "" {
		c.Keys.Sort = other.Keys.Sort
	}
	if other.Keys.Filter != "" {
		c.Keys.Filter = other.Keys.Filter
	}
	if other.Keys.StartPause != "" {
		c.Keys.StartPause = other.Keys.StartPause
	}
	if other.Keys.SwitchMode != "" {
		c.Keys.SwitchMode = other.Keys.SwitchMode
	}
	if other.Keys.Settings != "" {
		c.Keys.Settings = other.Keys.Settings
	}
	if other.Keys.Confirm != "" {
		c.Keys.Confirm = other.Keys.Confirm
	}
	if other.Keys.Cancel != "" {
		c.Keys.Cancel = other.Keys.Cancel
	}

	// YouTube merging
	if other.YouTube.APIKey != "" {
		c.YouTube.APIKey = other.YouTube.APIKey
	}
}

func (c *Config) mergeFromYAML(other *Config, doc *yaml.Node) {
	// Fall back to conservative behavior if we can't inspect presence.
	if doc == nil || len(doc.Content) == 0 {
		// Avoid clobbering defaults with zero-values: only apply non-empty strings.
		c.mergeNonEmpty(other)
		return
	}

	// First apply all non-empty string-ish merges.
	c.mergeNonEmpty(other)

	// Now re-apply booleans only when present in YAML.
	if yamlHasPath(doc, "ux", "confirm_deletions") {
		c.UX.ConfirmDeletions = other.UX.ConfirmDeletions
	}
	if yamlHasPath(doc, "notifications", "enabled") {
		c.Notifications.Enabled = other.Notifications.Enabled
	}
	if yamlHasPath(doc, "notifications", "sound") {
		c.Notifications.Sound = other.Notifications.Sound
	}
}

func yamlHasPath(doc *yaml.Node, path ...string) bool {
	if doc == nil || len(path) == 0 {
		return false
	}

	// Document -> root mapping.
	n := doc
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	for _, key := range path {
		if n == nil || n.Kind != yaml.MappingNode {
			return false
		}
		var next *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			v := n.Content[i+1]
			if k.Kind == yaml.ScalarNode && k.Value == key {
				next = v
				break
			}
		}
		if next == nil {
			return false
		}
		n = next
	}
	return true
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	path := configPath()
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return fsutil.WriteFileAtomic(path, data, 0600)
}

// GetDataDir returns the resolved data directory path.
func (c *Config) GetDataDir() string {
	if c.DataDir != "" {
		// Expand ~ if present
		if c.DataDir == "~" {
			home, err := os.UserHomeDir()
			if err == nil {
				return home
			}
			return c.DataDir
		}

		if strings.HasPrefix(c.DataDir, "~/") || strings.HasPrefix(c.DataDir, `~\`) {
			home, err := os.UserHomeDir()
			if err == nil {
				trimmed := strings.TrimPrefix(c.DataDir, "~/")
				trimmed = strings.TrimPrefix(trimmed, `~\`)
				trimmed = strings.TrimPrefix(trimmed, `\`)
				return filepath.Join(home, trimmed)
			}
		}
		return c.DataDir
	}
	return defaultDataDir()
}
