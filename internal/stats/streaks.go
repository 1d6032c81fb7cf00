// Package stats computes streaks and completion rates from habit records.
// It holds no state and never touches storage; callers feed it the output
// of the record store.
package stats

import (
	"time"

	"github.com/alexanderramin/ritmo/internal/domain"
)

// ComputeStreaks scans records (ascending by date) once and returns the
// current and longest runs of consecutive completed dates.
//
// A non-completed record resets the current run to zero but still anchors
// the next gap check. The returned current streak is measured at the last
// stored record: if that record pre-dates today, the value still reflects
// history up to it rather than dropping to zero.
func ComputeStreaks(records []*domain.HabitRecord) (current, longest int) {
	var prevDate *time.Time
	for _, rec := range records {
		if !rec.IsCompleted {
			current = 0
			d := rec.Date
			prevDate = &d
			continue
		}
		if prevDate != nil && isNextDay(*prevDate, rec.Date) {
			current++
		} else {
			current = 1
		}
		d := rec.Date
		prevDate = &d
		if current > longest {
			longest = current
		}
	}
	return current, longest
}

// isNextDay reports whether cur is the calendar day immediately after prev.
// Comparison is by calendar date, so DST shifts cannot skew the gap.
func isNextDay(prev, cur time.Time) bool {
	return domain.FormatDate(prev.AddDate(0, 0, 1)) == domain.FormatDate(cur)
}
