// Package storage persists the four tracker collections as JSON files in
// the data directory and implements the domain rules on top of them.
package storage

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hub/internal/fsutil"
)

// Storage handles all file I/O operations
type Storage struct {
	dataDir string
	now     func() time.Time // injectable clock for deterministic tests
}

const (
	dataDirPerm  os.FileMode = 0700
	dataFilePerm os.FileMode = 0600

	maxNameLen = 200
)

// DataFiles lists every collection file managed by Storage, in stable order.
// Backup and restore operate over exactly this set.
var DataFiles = []string{
	"habits.json",
	"tasks.json",
	"pomodoro_settings.json",
	"pomodoro_stats.json",
	"playlists.json",
}

// New creates a new Storage instance with the given data directory
func New(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Storage{dataDir: dataDir, now: time.Now}

	if err := s.initFiles(); err != nil {
		return nil, err
	}

	return s, nil
}

// SetNowFunc overrides the clock used by time-dependent storage operations.
// Passing nil resets it to time.Now.
func (s *Storage) SetNowFunc(now func() time.Time) {
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// Now returns the current time according to the storage clock.
func (s *Storage) Now() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// GetDataDir returns the path to the data directory.
func (s *Storage) GetDataDir() string {
	return s.dataDir
}

// initFiles creates default JSON files if they don't exist
func (s *Storage) initFiles() error {
	if !fileExists(s.path("habits.json")) {
		if err := s.SaveHabits(&HabitStore{Habits: []Habit{}}); err != nil {
			return err
		}
	}

	if !fileExists(s.path("tasks.json")) {
		if err := s.SaveTasks(&TaskStore{Tasks: []Task{}}); err != nil {
			return err
		}
	}

	if !fileExists(s.path("pomodoro_settings.json")) {
		settings := DefaultPomodoroSettings()
		if err := s.SavePomodoroSettings(&settings); err != nil {
			return err
		}
	}

	if !fileExists(s.path("pomodoro_stats.json")) {
		if err := s.SavePomodoroStats(&PomodoroStats{}); err != nil {
			return err
		}
	}

	if !fileExists(s.path("playlists.json")) {
		if err := s.SavePlaylists(&PlaylistStore{Playlists: []Playlist{}}); err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) path(filename string) string {
	return filepath.Join(s.dataDir, filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

func newID(prefix string) (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(b[:])), nil
}

func (s *Storage) writeJSONAtomic(filename string, v any) error {
	path := s.path(filename)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", filename, err)
	}

	// Keep a best-effort backup before overwriting.
	fsutil.BestEffortBackup(path, dataFilePerm)

	if err := fsutil.WriteFileAtomic(path, data, dataFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	return nil
}

func (s *Storage) loadJSONWithRecovery(filename string, v any) error {
	path := s.path(filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := s.writeJSONAtomic(filename, v); err != nil {
				return err
			}
			return nil
		}
		return fmt.Errorf("read %s: %w", filename, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s.recoverCorruptJSON(filename, v, fmt.Errorf("%s is empty", filename))
	}

	if err := json.Unmarshal(data, v); err == nil {
		return nil
	}
	return s.recoverCorruptJSON(filename, v, fmt.Errorf("parse %s: %w", filename, err))
}

func (s *Storage) recoverCorruptJSON(filename string, v any, cause error) error {
	path := s.path(filename)

	// Try backup first.
	bakData, bakErr := os.ReadFile(path + ".bak")
	if bakErr == nil && len(bytes.TrimSpace(bakData)) > 0 {
		if err := json.Unmarshal(bakData, v); err == nil {
			corruptPath := fmt.Sprintf("%s.corrupt.%s", path, time.Now().Format("20060102-150405"))
			_ = os.Rename(path, corruptPath)
			_ = s.writeJSONAtomic(filename, v)
			return fmt.Errorf("%s (recovered from %s.bak)", cause.Error(), filename)
		}
	}

	// No usable backup: preserve the broken file (best effort) and reset.
	corruptPath := fmt.Sprintf("%s.corrupt.%s", path, time.Now().Format("20060102-150405"))
	_ = os.Rename(path, corruptPath)
	_ = s.writeJSONAtomic(filename, v)
	return fmt.Errorf("%s (reset to defaults; original moved to %s)", cause.Error(), corruptPath)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
