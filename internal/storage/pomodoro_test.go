package storage

import (
	"testing"
	"time"
)

func TestLoadPomodoroSettingsDefaults(t *testing.T) {
	store := createTestStorage(t)

	settings, err := store.LoadPomodoroSettings()
	if err != nil {
		t.Fatalf("LoadPomodoroSettings() error = %v", err)
	}
	if settings.WorkDuration != 25 || settings.ShortBreakDuration != 5 || settings.LongBreakDuration != 15 {
		t.Errorf("defaults = %+v, want 25/5/15", settings)
	}
}

func TestSavePomodoroSettingsValidation(t *testing.T) {
	store := createTestStorage(t)

	bad := PomodoroSettings{WorkDuration: 0, ShortBreakDuration: 5, LongBreakDuration: 15}
	if err := store.SavePomodoroSettings(&bad); err == nil {
		t.Error("SavePomodoroSettings() with zero work duration error = nil, want error")
	}

	good := PomodoroSettings{WorkDuration: 50, ShortBreakDuration: 10, LongBreakDuration: 30}
	if err := store.SavePomodoroSettings(&good); err != nil {
		t.Fatalf("SavePomodoroSettings() error = %v", err)
	}
	loaded, err := store.LoadPomodoroSettings()
	if err != nil {
		t.Fatalf("LoadPomodoroSettings() error = %v", err)
	}
	if *loaded != good {
		t.Errorf("loaded settings = %+v, want %+v", loaded, good)
	}
}

func TestRecordWorkSession(t *testing.T) {
	store := createTestStorage(t)
	fixed := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	store.SetNowFunc(func() time.Time { return fixed })

	stats, err := store.RecordWorkSession(25)
	if err != nil {
		t.Fatalf("RecordWorkSession() error = %v", err)
	}
	if stats.SessionsToday != 1 || stats.TotalFocusTime != 25 || stats.CurrentStreak != 1 {
		t.Errorf("stats = %+v, want 1 session / 25 min / streak 1", stats)
	}
	if stats.LastSessionDate != "2026-03-14" {
		t.Errorf("LastSessionDate = %q, want 2026-03-14", stats.LastSessionDate)
	}

	stats, err = store.RecordWorkSession(25)
	if err != nil {
		t.Fatalf("RecordWorkSession() error = %v", err)
	}
	if stats.SessionsToday != 2 || stats.TotalFocusTime != 50 || stats.CurrentStreak != 2 {
		t.Errorf("stats = %+v, want 2 sessions / 50 min / streak 2", stats)
	}
}

func TestPomodoroStatsDailyRollover(t *testing.T) {
	store := createTestStorage(t)
	day1 := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)
	store.SetNowFunc(func() time.Time { return day1 })

	for i := 0; i < 3; i++ {
		if _, err := store.RecordWorkSession(25); err != nil {
			t.Fatalf("RecordWorkSession() error = %v", err)
		}
	}

	// Next day: sessions and focus time reset, streak survives.
	day2 := day1.AddDate(0, 0, 1)
	store.SetNowFunc(func() time.Time { return day2 })

	stats, err := store.LoadPomodoroStats()
	if err != nil {
		t.Fatalf("LoadPomodoroStats() error = %v", err)
	}
	if stats.SessionsToday != 0 {
		t.Errorf("SessionsToday = %d after rollover, want 0", stats.SessionsToday)
	}
	if stats.TotalFocusTime != 0 {
		t.Errorf("TotalFocusTime = %d after rollover, want 0", stats.TotalFocusTime)
	}
	if stats.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d after rollover, want 3 (rollover never resets it)", stats.CurrentStreak)
	}
	if stats.LastSessionDate != "2026-03-15" {
		t.Errorf("LastSessionDate = %q, want 2026-03-15", stats.LastSessionDate)
	}

	// The rollover is persisted, not just reported.
	reloaded, err := store.LoadPomodoroStats()
	if err != nil {
		t.Fatalf("LoadPomodoroStats() error = %v", err)
	}
	if reloaded.SessionsToday != 0 || reloaded.CurrentStreak != 3 {
		t.Errorf("reloaded stats = %+v", reloaded)
	}
}
