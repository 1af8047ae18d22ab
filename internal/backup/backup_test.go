package backup

import (
	"os"
	"path/filepath"
	"testing"

	"hub/internal/storage"
)

// seedData creates a data dir with one habit, two tasks and a playlist.
func seedData(t *testing.T) (string, *storage.Storage) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.New(dir)
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}

	if _, err := store.AddHabit("Meditate", storage.PriorityHigh, 7, "default"); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	if _, err := store.AddTask("Pay bills", "2026-09-01", storage.PriorityHigh); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if _, err := store.AddTask("Water plants", "2026-09-02", storage.PriorityLow); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if err := store.AddPlaylist(storage.Playlist{ID: "PL123", Title: "Go Tutorials"}); err != nil {
		t.Fatalf("AddPlaylist() error = %v", err)
	}

	return dir, store
}

func TestCreateBackup(t *testing.T) {
	dir, _ := seedData(t)
	mgr := NewManager(dir, "test")

	name, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	backupPath := filepath.Join(dir, BackupsDir, name)
	for _, filename := range storage.DataFiles {
		if _, err := os.Stat(filepath.Join(backupPath, filename)); err != nil {
			t.Errorf("backup missing %s: %v", filename, err)
		}
	}

	var manifest Manifest
	if err := readJSON(filepath.Join(backupPath, ManifestFile), &manifest); err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if manifest.Version != ManifestVersion {
		t.Errorf("manifest.Version = %q, want %q", manifest.Version, ManifestVersion)
	}
	if len(manifest.Files) != len(storage.DataFiles) {
		t.Errorf("manifest.Files = %v, want all %d data files", manifest.Files, len(storage.DataFiles))
	}
	if manifest.Stats["habits"] != 1 || manifest.Stats["tasks"] != 2 || manifest.Stats["playlists"] != 1 {
		t.Errorf("manifest.Stats = %v, want habits:1 tasks:2 playlists:1", manifest.Stats)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	dir, store := seedData(t)
	mgr := NewManager(dir, "test")

	name, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Mutate after the backup.
	loaded, _ := store.LoadTasks()
	for _, task := range loaded.Tasks {
		if err := store.DeleteTask(task.ID); err != nil {
			t.Fatalf("DeleteTask() error = %v", err)
		}
	}

	if err := mgr.Restore(name); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	restored, err := store.LoadTasks()
	if err != nil {
		t.Fatalf("LoadTasks() error = %v", err)
	}
	if len(restored.Tasks) != 2 {
		t.Errorf("len(tasks) = %d after restore, want 2", len(restored.Tasks))
	}
}

func TestRestoreUnknownBackup(t *testing.T) {
	dir, _ := seedData(t)
	mgr := NewManager(dir, "test")

	if err := mgr.Restore("2026-01-01_000000_000"); err == nil {
		t.Error("Restore(missing) error = nil, want error")
	}
	if err := mgr.Restore("../escape"); err == nil {
		t.Error("Restore(path traversal) error = nil, want error")
	}
}

func TestListSortsNewestFirst(t *testing.T) {
	dir, _ := seedData(t)
	mgr := NewManager(dir, "test")

	first, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("len(backups) = %d, want 2", len(backups))
	}
	if backups[0].Name != second || backups[1].Name != first {
		t.Errorf("backups not sorted newest first: %s, %s", backups[0].Name, backups[1].Name)
	}
}

func TestPrune(t *testing.T) {
	dir, _ := seedData(t)
	mgr := NewManager(dir, "test")

	for i := 0; i < 4; i++ {
		if _, err := mgr.Create(); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	deleted, err := mgr.Prune(2)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if deleted != 2 {
		t.Errorf("Prune() deleted = %d, want 2", deleted)
	}

	backups, _ := mgr.List()
	if len(backups) != 2 {
		t.Errorf("len(backups) = %d after prune, want 2", len(backups))
	}
}
