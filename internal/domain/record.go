package domain

import "time"

// HabitRecord is the completion state of one habit on one calendar date.
// At most one record exists per (HabitID, Date); re-recording the same date
// overwrites the completion flag and note.
type HabitRecord struct {
	ID          int64
	HabitID     int64
	Date        time.Time // calendar date, no time component
	IsCompleted bool
	Note        string
	RecordedAt  time.Time // UTC timestamp of the last write
}
