package storage

import "fmt"

// LoadPomodoroSettings reads timer settings from disk.
func (s *Storage) LoadPomodoroSettings() (*PomodoroSettings, error) {
	settings := DefaultPomodoroSettings()
	err := s.loadJSONWithRecovery("pomodoro_settings.json", &settings)
	if settings.WorkDuration <= 0 || settings.ShortBreakDuration <= 0 || settings.LongBreakDuration <= 0 {
		settings = DefaultPomodoroSettings()
	}
	return &settings, err
}

// SavePomodoroSettings validates and writes timer settings.
func (s *Storage) SavePomodoroSettings(settings *PomodoroSettings) error {
	if settings.WorkDuration <= 0 || settings.ShortBreakDuration <= 0 || settings.LongBreakDuration <= 0 {
		return fmt.Errorf("durations must be positive minutes")
	}
	return s.writeJSONAtomic("pomodoro_settings.json", settings)
}

// LoadPomodoroStats reads focus stats from disk, applying the daily
// rollover: when the stored date is not today, today's session count and
// focus time reset to zero and the date moves forward. The streak is
// never touched by rollover. A rollover is persisted immediately.
func (s *Storage) LoadPomodoroStats() (*PomodoroStats, error) {
	stats := PomodoroStats{}
	if err := s.loadJSONWithRecovery("pomodoro_stats.json", &stats); err != nil {
		return &stats, err
	}

	today := s.Now().Format("2006-01-02")
	if stats.LastSessionDate != today {
		stats.SessionsToday = 0
		stats.TotalFocusTime = 0
		stats.LastSessionDate = today
		if err := s.SavePomodoroStats(&stats); err != nil {
			return &stats, err
		}
	}

	return &stats, nil
}

// SavePomodoroStats writes focus stats to disk.
func (s *Storage) SavePomodoroStats(stats *PomodoroStats) error {
	return s.writeJSONAtomic("pomodoro_stats.json", stats)
}

// RecordWorkSession credits one completed work interval: sessions and
// streak increment, focus time grows by the work duration (minutes), and
// the session date is stamped with today. Returns the updated stats.
func (s *Storage) RecordWorkSession(workMinutes int) (*PomodoroStats, error) {
	stats, err := s.LoadPomodoroStats()
	if err != nil {
		return nil, err
	}

	stats.SessionsToday++
	stats.TotalFocusTime += workMinutes
	stats.CurrentStreak++
	stats.LastSessionDate = s.Now().Format("2006-01-02")

	if err := s.SavePomodoroStats(stats); err != nil {
		return nil, err
	}
	return stats, nil
}
