package domain

import "time"

// PomodoroSession is one timed focus interval, optionally linked to a habit.
// Sessions live in memory while running and are appended to storage only on
// a terminal transition, so no "in-progress" rows ever exist.
type PomodoroSession struct {
	ID              int64
	HabitID         *int64 // nil when the session is unlinked
	StartTime       time.Time
	EndTime         *time.Time // set on completion or abort
	DurationSeconds int        // planned length in seconds, never recomputed from elapsed time
	Status          SessionStatus
}
