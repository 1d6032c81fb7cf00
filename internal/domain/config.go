package domain

import "errors"

// AppConfig is the singleton timer configuration row (id = 1).
type AppConfig struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
	LongBreakInterval int
}

// DefaultAppConfig returns the built-in timer durations used when no
// configuration row exists yet.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		WorkMinutes:       25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		LongBreakInterval: 4,
	}
}

// Validate checks that every duration and the long-break interval is positive.
func (c AppConfig) Validate() error {
	if c.WorkMinutes < 1 || c.ShortBreakMinutes < 1 || c.LongBreakMinutes < 1 {
		return errors.New("timer durations must be at least 1 minute")
	}
	if c.LongBreakInterval < 1 {
		return errors.New("long break interval must be at least 1")
	}
	return nil
}
