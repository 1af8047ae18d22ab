// Package main is the entry point for the hub application.
// This file contains the restore subcommand handler.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"hub/internal/backup"
	"hub/internal/config"
)

// restoreHelpText is the help message for the restore subcommand.
const restoreHelpText = `hub restore - Restore data from a backup

USAGE:
    hub restore [OPTIONS] [BACKUP_NAME]

OPTIONS:
    --latest       Restore from the most recent backup
    --force, -f    Skip confirmation prompt
    -h, --help     Show this help message

ARGUMENTS:
    BACKUP_NAME    Name of the backup to restore (e.g., 2026-08-30_143022_000)
                   Use 'hub backup --list' to see available backups.

DESCRIPTION:
    Restores all data files (habits, tasks, timer settings and stats,
    playlists) from a specific backup. A safety backup is automatically
    created before restoring.

EXAMPLES:
    # Restore from a specific backup
    hub restore 2026-08-30_143022_000

    # Restore from the most recent backup
    hub restore --latest

    # Restore without confirmation prompt
    hub restore --force 2026-08-30_143022_000
`

// runRestore handles the "hub restore" subcommand.
func runRestore(args []string) {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)

	latestFlag := fs.Bool("latest", false, "restore from most recent backup")
	forceFlag := fs.Bool("force", false, "skip confirmation prompt")
	fs.BoolVar(forceFlag, "f", false, "skip confirmation prompt (shorthand)")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, restoreHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(restoreHelpText)
		os.Exit(0)
	}

	// Load config to get data directory
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	manager := backup.NewManager(cfg.GetDataDir(), version)

	backups, err := manager.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing backups: %v\n", err)
		os.Exit(1)
	}

	// Determine which backup to restore
	var backupName string
	if *latestFlag {
		if len(backups) == 0 {
			fmt.Fprintln(os.Stderr, "No backups available.")
			os.Exit(1)
		}
		backupName = backups[0].Name
	} else if fs.NArg() > 0 {
		backupName = fs.Arg(0)
	} else {
		fmt.Fprintln(os.Stderr, "Error: no backup specified")
		fmt.Fprintln(os.Stderr, "Use 'hub restore BACKUP_NAME' or 'hub restore --latest'")
		fmt.Fprintln(os.Stderr, "Run 'hub backup --list' to see available backups.")
		os.Exit(1)
	}

	// Display backup info
	fmt.Printf("Restoring from backup: %s\n", backupName)
	for _, b := range backups {
		if b.Name == backupName {
			fmt.Printf("  Created: %s\n", b.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Printf("  Habits: %d, Tasks: %d, Playlists: %d\n",
				b.Stats["habits"], b.Stats["tasks"], b.Stats["playlists"])
			break
		}
	}
	fmt.Println()

	// Confirm unless --force is set
	if !*forceFlag {
		fmt.Println("⚠ This will overwrite your current data.")
		fmt.Print("Continue? [y/N] ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			os.Exit(1)
		}

		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Restore cancelled.")
			os.Exit(0)
		}
	}

	// Perform restore
	fmt.Println("✓ Creating safety backup first...")
	if err := manager.Restore(backupName); err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring backup: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Restored successfully from %s\n", backupName)
}
