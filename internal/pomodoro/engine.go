// Package pomodoro implements the countdown state machine for focus
// sessions. The engine is pure: callers own the tick source and feed it
// one Tick per second while it is running.
package pomodoro

import "fmt"

// Mode identifies which interval the countdown is running.
type Mode int

const (
	ModeWork Mode = iota
	ModeShortBreak
	ModeLongBreak
)

// String returns the display label for a mode.
func (m Mode) String() string {
	switch m {
	case ModeWork:
		return "Focus"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// LongBreakEvery is the work-session cadence for the long break: every
// fourth completed work session earns one.
const LongBreakEvery = 4

// Engine is the countdown state machine. It is not safe for concurrent
// use; the single event loop that owns it drives every transition.
type Engine struct {
	workMin  int
	shortMin int
	longMin  int

	mode     Mode
	running  bool
	timeLeft int // seconds
}

// New builds an engine in idle work mode with the given durations in
// minutes. Non-positive durations are rejected.
func New(workMin, shortMin, longMin int) (*Engine, error) {
	if workMin <= 0 || shortMin <= 0 || longMin <= 0 {
		return nil, fmt.Errorf("durations must be positive minutes (got %d/%d/%d)", workMin, shortMin, longMin)
	}
	e := &Engine{workMin: workMin, shortMin: shortMin, longMin: longMin}
	e.resetClock()
	return e, nil
}

// Mode returns the current interval mode.
func (e *Engine) Mode() Mode { return e.mode }

// Running reports whether the countdown is live.
func (e *Engine) Running() bool { return e.running }

// TimeLeft returns the remaining seconds in the current interval.
func (e *Engine) TimeLeft() int { return e.timeLeft }

// TotalSeconds returns the full length of the current mode's interval.
func (e *Engine) TotalSeconds() int {
	return e.modeMinutes(e.mode) * 60
}

// WorkMinutes returns the configured work interval length.
func (e *Engine) WorkMinutes() int { return e.workMin }

func (e *Engine) modeMinutes(m Mode) int {
	switch m {
	case ModeShortBreak:
		return e.shortMin
	case ModeLongBreak:
		return e.longMin
	default:
		return e.workMin
	}
}

func (e *Engine) resetClock() {
	e.timeLeft = e.TotalSeconds()
}

// Start begins (or resumes) the countdown. The caller must ensure a
// single 1 Hz tick source is live while Running reports true.
func (e *Engine) Start() {
	e.running = true
}

// Pause freezes the countdown, retaining the remaining time.
func (e *Engine) Pause() {
	e.running = false
}

// Reset stops the countdown and restores the current mode's full
// duration.
func (e *Engine) Reset() {
	e.running = false
	e.resetClock()
}

// Tick advances the countdown by one second. It returns true exactly
// once per interval, when the countdown reaches zero; the engine pauses
// itself at that point. Ticks while paused are ignored (a stale tick
// source must not advance the clock).
func (e *Engine) Tick() (completed bool) {
	if !e.running {
		return false
	}
	e.timeLeft--
	if e.timeLeft <= 0 {
		e.timeLeft = 0
		e.running = false
		return true
	}
	return false
}

// SwitchMode moves to the requested mode, abandoning any in-progress
// countdown without crediting it.
func (e *Engine) SwitchMode(m Mode) {
	e.mode = m
	e.Reset()
}

// NextMode returns where the engine goes after completing the given
// interval: breaks return to work, and work earns a short break unless
// the completed session count has hit the long-break cadence.
func NextMode(completed Mode, sessionsToday int) Mode {
	if completed != ModeWork {
		return ModeWork
	}
	if sessionsToday > 0 && sessionsToday%LongBreakEvery == 0 {
		return ModeLongBreak
	}
	return ModeShortBreak
}

// ApplySettings replaces the three durations and resets the current
// mode into its new full length, discarding any running countdown.
func (e *Engine) ApplySettings(workMin, shortMin, longMin int) error {
	if workMin <= 0 || shortMin <= 0 || longMin <= 0 {
		return fmt.Errorf("durations must be positive minutes (got %d/%d/%d)", workMin, shortMin, longMin)
	}
	e.workMin = workMin
	e.shortMin = shortMin
	e.longMin = longMin
	e.Reset()
	return nil
}

// Progress returns the elapsed fraction of the current interval in
// [0, 1].
func (e *Engine) Progress() float64 {
	total := e.TotalSeconds()
	if total == 0 {
		return 0
	}
	return float64(total-e.timeLeft) / float64(total)
}

// Clock formats the remaining time as zero-padded MM:SS.
func (e *Engine) Clock() string {
	return fmt.Sprintf("%02d:%02d", e.timeLeft/60, e.timeLeft%60)
}
