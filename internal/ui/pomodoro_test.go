package ui

import (
	"strings"
	"testing"
	"time"

	"hub/internal/pomodoro"
	"hub/internal/storage"
)

func newPomodoroPane(t *testing.T, store *storage.Storage) *PomodoroPane {
	t.Helper()
	pane := NewPomodoroPane(store, createTestStyles())
	pane.SetSize(60, 24)
	pane.SetFocused(true)
	drainPane(t, pane, pane.LoadCmd())
	return pane
}

func TestPomodoroPaneView_Initial(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	pane := newPomodoroPane(t, store)

	output := pane.View()
	if !strings.Contains(output, "Focus") {
		t.Errorf("view missing mode name:\n%s", output)
	}
	if !strings.Contains(output, "25:00") {
		t.Errorf("view missing initial clock:\n%s", output)
	}
	if !strings.Contains(output, "paused") {
		t.Errorf("view missing paused marker:\n%s", output)
	}
}

func TestPomodoroPaneStartPauseAndTick(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	pane := newPomodoroPane(t, store)

	pane.Update(keyMsg(" "))
	if !pane.IsRunning() {
		t.Fatal("timer not running after space")
	}

	pane.Update(tickMsg(time.Now()))
	if got := pane.engine.TimeLeft(); got != 25*60-1 {
		t.Errorf("TimeLeft = %d after one tick, want %d", got, 25*60-1)
	}

	pane.Update(keyMsg(" "))
	if pane.IsRunning() {
		t.Fatal("timer still running after pause")
	}

	// Ticks are inert while paused
	pane.Update(tickMsg(time.Now()))
	if got := pane.engine.TimeLeft(); got != 25*60-1 {
		t.Errorf("TimeLeft = %d, paused tick should not count down", got)
	}
}

func TestPomodoroPaneWorkCompletionRecordsSession(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	freezeNow(t, store)
	pane := newPomodoroPane(t, store)

	pane.Update(keyMsg(" "))
	for i := 0; i < 25*60-1; i++ {
		pane.Update(tickMsg(time.Now()))
	}

	// Final tick completes the session; drain to run the record command.
	drainPane(t, pane, pane.Update(tickMsg(time.Now())))

	stats, err := store.LoadPomodoroStats()
	if err != nil {
		t.Fatalf("LoadPomodoroStats() error = %v", err)
	}
	if stats.SessionsToday != 1 || stats.TotalFocusTime != 25 {
		t.Errorf("stats = %+v, want 1 session / 25 minutes", stats)
	}
	if stats.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", stats.CurrentStreak)
	}

	// After the first completed session the engine moves to a short break.
	if pane.engine.Mode() != pomodoro.ModeShortBreak {
		t.Errorf("Mode = %v after first session, want short break", pane.engine.Mode())
	}
	if pane.engine.Running() {
		t.Error("engine should be paused at mode boundary")
	}
}

func TestPomodoroPaneSwitchModeAbandons(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	pane := newPomodoroPane(t, store)

	pane.Update(keyMsg(" "))
	pane.Update(tickMsg(time.Now()))
	pane.Update(keyMsg("m"))

	if pane.engine.Mode() != pomodoro.ModeShortBreak {
		t.Errorf("Mode = %v after switch, want short break", pane.engine.Mode())
	}
	// No session was recorded for the abandoned work block.
	stats, _ := store.LoadPomodoroStats()
	if stats.SessionsToday != 0 {
		t.Errorf("SessionsToday = %d after abandon, want 0", stats.SessionsToday)
	}
}

func TestPomodoroPaneSettingsFlow(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	pane := newPomodoroPane(t, store)

	pane.Update(keyMsg("o"))
	if !pane.IsAdding() {
		t.Fatal("pane not in settings mode after 'o'")
	}

	pane.input.SetValue("50")
	drainPane(t, pane, pane.Update(keyEnter())) // work
	pane.input.SetValue("10")
	drainPane(t, pane, pane.Update(keyEnter())) // short
	pane.input.SetValue("20")
	drainPane(t, pane, pane.Update(keyEnter())) // long

	settings, err := store.LoadPomodoroSettings()
	if err != nil {
		t.Fatalf("LoadPomodoroSettings() error = %v", err)
	}
	if settings.WorkDuration != 50 || settings.ShortBreakDuration != 10 || settings.LongBreakDuration != 20 {
		t.Errorf("settings = %+v", settings)
	}

	// Engine picked up the new durations
	if pane.engine.TimeLeft() != 50*60 {
		t.Errorf("TimeLeft = %d, want %d", pane.engine.TimeLeft(), 50*60)
	}
}

func TestPomodoroPaneSettingsRejectInvalid(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	pane := newPomodoroPane(t, store)

	pane.Update(keyMsg("o"))
	pane.input.SetValue("zero")
	pane.Update(keyEnter())

	if !pane.IsAdding() {
		t.Error("settings editor closed on unparseable input")
	}
	if pane.editStep != 0 {
		t.Errorf("editStep = %d, want to stay on 0", pane.editStep)
	}
}
