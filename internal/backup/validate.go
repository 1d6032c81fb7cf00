package backup

import (
	"fmt"
	"time"

	"github.com/alexanderramin/ritmo/internal/domain"
)

var validSessionStatuses = map[string]bool{"running": true, "completed": true, "aborted": true}

// ValidateDocument checks a backup document before anything touches storage.
// Returns a slice of all validation errors found; an import must refuse the
// whole document when any are present.
func ValidateDocument(doc *Document) []error {
	var errs []error

	for i, h := range doc.Habits {
		if h.Name == "" {
			errs = append(errs, fmt.Errorf("habits[%d]: name is required", i))
		}
		if h.TargetPerWeek < 1 || h.TargetPerWeek > 7 {
			errs = append(errs, fmt.Errorf("habits[%d]: target_per_week must be between 1 and 7", i))
		}
		if h.CreatedAt == "" {
			errs = append(errs, fmt.Errorf("habits[%d]: created_at is required", i))
		} else if _, err := time.Parse(time.RFC3339, h.CreatedAt); err != nil {
			errs = append(errs, fmt.Errorf("habits[%d]: invalid created_at %q", i, h.CreatedAt))
		}
		if h.DeletedAt != nil {
			if _, err := time.Parse(time.RFC3339, *h.DeletedAt); err != nil {
				errs = append(errs, fmt.Errorf("habits[%d]: invalid deleted_at %q", i, *h.DeletedAt))
			}
		}
	}

	for i, r := range doc.Records {
		if r.HabitID == 0 {
			errs = append(errs, fmt.Errorf("habit_records[%d]: habit_id is required", i))
		}
		if _, err := time.Parse(domain.DateLayout, r.Date); err != nil {
			errs = append(errs, fmt.Errorf("habit_records[%d]: invalid date %q (expected YYYY-MM-DD)", i, r.Date))
		}
		if r.RecordedAt != "" {
			if _, err := time.Parse(time.RFC3339, r.RecordedAt); err != nil {
				errs = append(errs, fmt.Errorf("habit_records[%d]: invalid recorded_at %q", i, r.RecordedAt))
			}
		}
	}

	for i, p := range doc.Pomodoros {
		if _, err := time.Parse(time.RFC3339, p.StartTime); err != nil {
			errs = append(errs, fmt.Errorf("pomodoros[%d]: invalid start_time %q", i, p.StartTime))
		}
		if p.EndTime != nil {
			if _, err := time.Parse(time.RFC3339, *p.EndTime); err != nil {
				errs = append(errs, fmt.Errorf("pomodoros[%d]: invalid end_time %q", i, *p.EndTime))
			}
		}
		if !validSessionStatuses[p.Status] {
			errs = append(errs, fmt.Errorf("pomodoros[%d]: invalid status %q", i, p.Status))
		}
		if p.DurationSeconds < 0 {
			errs = append(errs, fmt.Errorf("pomodoros[%d]: duration_seconds must not be negative", i))
		}
	}

	return errs
}
