package domain

import (
	"errors"
	"time"
)

// DefaultCategory is the sentinel category for habits created without one.
const DefaultCategory = "uncategorized"

// Habit is a user-defined recurring activity tracked daily.
// A non-nil DeletedAt marks the habit soft-deleted: hidden from active
// listings and selectors while its records stay queryable.
type Habit struct {
	ID            int64
	Name          string
	Description   string
	Category      string
	TargetPerWeek int
	Enabled       bool
	CreatedAt     time.Time
	DeletedAt     *time.Time
}

// IsDeleted reports whether the habit has been soft-deleted.
func (h *Habit) IsDeleted() bool {
	return h.DeletedAt != nil
}

// Validate checks the invariants required before persisting a habit.
// Duplicate names are deliberately not rejected.
func (h *Habit) Validate() error {
	if h.Name == "" {
		return errors.New("habit name is required")
	}
	if h.TargetPerWeek < 1 || h.TargetPerWeek > 7 {
		return errors.New("target per week must be between 1 and 7")
	}
	return nil
}
