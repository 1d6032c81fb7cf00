package testutil

import (
	"time"

	"github.com/alexanderramin/ritmo/internal/domain"
)

// Habit options
type HabitOption func(*domain.Habit)

func WithCategory(c string) HabitOption {
	return func(h *domain.Habit) {
		h.Category = c
	}
}

func WithTargetPerWeek(n int) HabitOption {
	return func(h *domain.Habit) {
		h.TargetPerWeek = n
	}
}

func WithDisabled() HabitOption {
	return func(h *domain.Habit) {
		h.Enabled = false
	}
}

func WithCreatedAt(t time.Time) HabitOption {
	return func(h *domain.Habit) {
		h.CreatedAt = t
	}
}

// NewTestHabit builds an unsaved habit; the repository assigns the id.
func NewTestHabit(name string, opts ...HabitOption) *domain.Habit {
	h := &domain.Habit{
		Name:          name,
		Description:   "test habit",
		Category:      domain.DefaultCategory,
		TargetPerWeek: 7,
		Enabled:       true,
		CreatedAt:     time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Session options
type SessionOption func(*domain.PomodoroSession)

func WithStatus(s domain.SessionStatus) SessionOption {
	return func(p *domain.PomodoroSession) {
		p.Status = s
	}
}

func WithStartTime(t time.Time) SessionOption {
	return func(p *domain.PomodoroSession) {
		p.StartTime = t
	}
}

func WithHabitID(id int64) SessionOption {
	return func(p *domain.PomodoroSession) {
		p.HabitID = &id
	}
}

// NewTestSession builds a finished session ready for Append.
func NewTestSession(durationSeconds int, opts ...SessionOption) *domain.PomodoroSession {
	start := time.Now().UTC().Add(-time.Duration(durationSeconds) * time.Second)
	end := time.Now().UTC()
	s := &domain.PomodoroSession{
		StartTime:       start,
		EndTime:         &end,
		DurationSeconds: durationSeconds,
		Status:          domain.SessionCompleted,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
