package pomodoro

import "testing"

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(25, 5, 15)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

func TestNewRejectsNonPositiveDurations(t *testing.T) {
	for _, args := range [][3]int{{0, 5, 15}, {25, 0, 15}, {25, 5, -1}} {
		if _, err := New(args[0], args[1], args[2]); err == nil {
			t.Errorf("New(%v) error = nil, want error", args)
		}
	}
}

func TestFreshEngineIsIdleWork(t *testing.T) {
	e := newTestEngine(t)

	if e.Mode() != ModeWork {
		t.Errorf("Mode() = %v, want work", e.Mode())
	}
	if e.Running() {
		t.Error("Running() = true on a fresh engine")
	}
	if e.TimeLeft() != 25*60 {
		t.Errorf("TimeLeft() = %d, want 1500", e.TimeLeft())
	}
	if e.Clock() != "25:00" {
		t.Errorf("Clock() = %q, want 25:00", e.Clock())
	}
	if e.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", e.Progress())
	}
}

func TestFullWorkIntervalCompletesExactlyOnce(t *testing.T) {
	e := newTestEngine(t)
	e.Start()

	completions := 0
	for i := 0; i < 25*60; i++ {
		if e.Tick() {
			completions++
		}
	}

	if completions != 1 {
		t.Errorf("completions = %d after a full interval, want exactly 1", completions)
	}
	if e.TimeLeft() != 0 {
		t.Errorf("TimeLeft() = %d, want 0", e.TimeLeft())
	}
	if e.Running() {
		t.Error("engine still running after completion")
	}

	// Further ticks on the stopped engine are inert.
	if e.Tick() {
		t.Error("Tick() after completion returned true")
	}
	if e.TimeLeft() != 0 {
		t.Errorf("TimeLeft() = %d after post-completion tick, want 0", e.TimeLeft())
	}
}

func TestTickIgnoredWhilePaused(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.Tick()
	e.Tick()
	e.Pause()

	left := e.TimeLeft()
	if e.Tick() {
		t.Error("Tick() while paused returned true")
	}
	if e.TimeLeft() != left {
		t.Errorf("TimeLeft() = %d after paused tick, want %d", e.TimeLeft(), left)
	}

	// Resume keeps the retained remainder.
	e.Start()
	e.Tick()
	if e.TimeLeft() != left-1 {
		t.Errorf("TimeLeft() = %d after resume+tick, want %d", e.TimeLeft(), left-1)
	}
}

func TestResetRestoresFullDuration(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	for i := 0; i < 100; i++ {
		e.Tick()
	}

	e.Reset()
	if e.Running() {
		t.Error("Running() = true after reset")
	}
	if e.TimeLeft() != 25*60 {
		t.Errorf("TimeLeft() = %d after reset, want 1500", e.TimeLeft())
	}
}

func TestSwitchModeAbandonsCountdown(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	for i := 0; i < 300; i++ {
		e.Tick()
	}

	e.SwitchMode(ModeShortBreak)
	if e.Mode() != ModeShortBreak {
		t.Errorf("Mode() = %v, want short break", e.Mode())
	}
	if e.Running() {
		t.Error("Running() = true after mode switch")
	}
	if e.TimeLeft() != 5*60 {
		t.Errorf("TimeLeft() = %d, want 300 (full short break)", e.TimeLeft())
	}
}

func TestNextMode(t *testing.T) {
	tests := []struct {
		name      string
		completed Mode
		sessions  int
		want      Mode
	}{
		{name: "first work session earns short break", completed: ModeWork, sessions: 1, want: ModeShortBreak},
		{name: "second", completed: ModeWork, sessions: 2, want: ModeShortBreak},
		{name: "third", completed: ModeWork, sessions: 3, want: ModeShortBreak},
		{name: "fourth earns long break", completed: ModeWork, sessions: 4, want: ModeLongBreak},
		{name: "fifth back to short", completed: ModeWork, sessions: 5, want: ModeShortBreak},
		{name: "eighth earns long break", completed: ModeWork, sessions: 8, want: ModeLongBreak},
		{name: "short break returns to work", completed: ModeShortBreak, sessions: 4, want: ModeWork},
		{name: "long break returns to work", completed: ModeLongBreak, sessions: 4, want: ModeWork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextMode(tt.completed, tt.sessions); got != tt.want {
				t.Errorf("NextMode(%v, %d) = %v, want %v", tt.completed, tt.sessions, got, tt.want)
			}
		})
	}
}

func TestApplySettings(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	for i := 0; i < 60; i++ {
		e.Tick()
	}

	if err := e.ApplySettings(50, 10, 30); err != nil {
		t.Fatalf("ApplySettings() error = %v", err)
	}
	if e.Running() {
		t.Error("Running() = true after settings change")
	}
	if e.TimeLeft() != 50*60 {
		t.Errorf("TimeLeft() = %d, want 3000 (new full work duration)", e.TimeLeft())
	}

	if err := e.ApplySettings(0, 10, 30); err == nil {
		t.Error("ApplySettings(0,10,30) error = nil, want error")
	}
	// Failed settings change leaves the engine untouched.
	if e.TimeLeft() != 50*60 {
		t.Errorf("TimeLeft() = %d after rejected settings, want 3000", e.TimeLeft())
	}
}

func TestClockAndProgress(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	for i := 0; i < 90; i++ {
		e.Tick()
	}

	if e.Clock() != "23:30" {
		t.Errorf("Clock() = %q, want 23:30", e.Clock())
	}
	want := float64(90) / float64(1500)
	if got := e.Progress(); got != want {
		t.Errorf("Progress() = %v, want %v", got, want)
	}
}
