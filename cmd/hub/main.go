// Package main is the entry point for the hub application.
// It loads configuration, initializes storage, and starts the TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	"hub/internal/config"
	"hub/internal/notify"
	"hub/internal/storage"
	"hub/internal/ui"
	"hub/internal/youtube"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `hub - A unified productivity hub for your terminal

USAGE:
    hub [OPTIONS]
    hub <command> [ARGS]

COMMANDS:
    backup           Create a backup of all data
    backup --list    List available backups
    backup --prune N Keep only the N newest backups
    restore NAME     Restore from a specific backup
    restore --latest Restore from the most recent backup
    export           Generate a progress report (Markdown)
    export -f json   Output report as JSON
    import           Import tasks from other apps
    import todoist   Import from Todoist CSV backup
    import taskwarrior  Import from Taskwarrior JSON

OPTIONS:
    -h, --help       Show this help message
    -v, --version    Show version information

DESCRIPTION:
    hub is a terminal-based productivity app that combines habit tracking,
    tasks, a focus timer, and YouTube playlist progress in a single,
    keyboard-driven interface.

FEATURES:
    • Habits     - N-day progress grids with per-day toggling
    • Tasks      - Due dates, priorities, sorting and filtering
    • Focus      - Pomodoro timer with daily session statistics
    • Playlists  - Track watched videos across imported YouTube playlists
    • Local Data - Plain JSON files in ~/.hub/

KEYBINDINGS:
    Global:
        Tab          Cycle through tabs
        1, 2, 3, 4   Jump to a specific tab
        ?            Show help overlay
        q            Quit

    Habits Tab:
        j/k, ↓/↑     Navigate habits
        h/l, ←/→     Move the day cursor
        a            Add habit
        d/Space      Toggle the selected day
        r            Reset progress
        x            Delete habit

    Tasks Tab:
        j/k, ↓/↑     Navigate
        a            Add task
        d/Space      Toggle done
        s            Cycle sort order
        f            Cycle filter
        x            Delete task

    Focus Tab:
        Space        Start/pause timer
        m            Switch mode (focus/short break/long break)
        r            Reset timer
        o            Edit durations

    Playlists Tab:
        j/k, ↓/↑     Navigate
        a            Import playlist by URL
        d/Space      Expand playlist / mark video watched
        x            Delete playlist

DATA STORAGE:
    All data is stored in ~/.hub/ as plain JSON files:
        habits.json             - Habits and progress grids
        tasks.json              - Your tasks
        pomodoro_settings.json  - Timer durations
        pomodoro_stats.json     - Focus session statistics
        playlists.json          - Imported playlists

CONFIGURATION:
    Optional config file: ~/.config/hub/config.yaml
    Playlist import needs a YouTube Data API key, set either as
    youtube.api_key in the config file or via the YOUTUBE_API_KEY
    environment variable (the environment wins when both are set).

EXAMPLES:
    # Start the app
    hub

    # Create a backup
    hub backup

    # Restore from a backup
    hub restore --latest

    # Generate today's report
    hub export

    # Show version
    hub --version
`

func main() {
	// Check for subcommands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "backup":
			runBackup(os.Args[2:])
			return
		case "restore":
			runRestore(os.Args[2:])
			return
		case "export":
			runExport(os.Args[2:])
			return
		case "import":
			runImport(os.Args[2:])
			return
		}
	}

	// Define flags
	showVersion := flag.Bool("version", false, "show version information")
	flag.BoolVar(showVersion, "v", false, "show version information (shorthand)")

	showHelp := flag.Bool("help", false, "show help message")
	flag.BoolVar(showHelp, "h", false, "show help message (shorthand)")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
	}

	flag.Parse()

	// Handle version flag
	if *showVersion {
		fmt.Printf("hub version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	// Handle help flag
	if *showHelp {
		fmt.Print(helpText)
		os.Exit(0)
	}

	// Reject unknown arguments
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown arguments: %v\n\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration (from ~/.config/hub/config.yaml or defaults)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Initialize storage with configured data directory
	store, err := storage.New(cfg.GetDataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	// Desktop notifications for timer completions, when enabled
	notifier := notify.Disabled()
	if cfg.Notifications.Enabled {
		notifier = notify.New()
	}

	// Create styles from theme config
	styles := ui.NewStylesFromTheme(&cfg.Theme)

	// Create app config with keys and UX settings
	appCfg := &ui.AppConfig{
		Keys:             &cfg.Keys,
		ConfirmDeletions: cfg.UX.ConfirmDeletions,
		Notifier:         notifier,
		Sound:            cfg.Notifications.Sound,
		YouTube:          youtube.NewClient(cfg.YouTube.APIKey),
	}

	// Run the TUI
	if err := ui.Run(store, styles, appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
