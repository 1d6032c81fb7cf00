package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/ritmo/internal/domain"
)

type HabitRepo interface {
	Create(ctx context.Context, h *domain.Habit) error
	Update(ctx context.Context, h *domain.Habit) error
	SoftDelete(ctx context.Context, id int64) error
	// Delete removes the habit row outright. Records cascade; sessions keep
	// their row with habit_id set to NULL. Exposed only through "purge".
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Habit, error)
	List(ctx context.Context, enabledOnly, includeDeleted bool) ([]*domain.Habit, error)
}

type RecordRepo interface {
	Upsert(ctx context.Context, habitID int64, date time.Time, isCompleted bool, note string) (*domain.HabitRecord, error)
	GetByHabitAndDate(ctx context.Context, habitID int64, date time.Time) (*domain.HabitRecord, error)
	FetchRange(ctx context.Context, habitID int64, start, end time.Time) ([]*domain.HabitRecord, error)
	// CountCompletedSince counts completed records with date >= today-windowDays+1.
	// The window end is always "today", so results move with the calendar.
	CountCompletedSince(ctx context.Context, habitID int64, windowDays int) (int, error)
	AllByHabit(ctx context.Context, habitID int64) ([]*domain.HabitRecord, error)
}

type SessionRepo interface {
	Append(ctx context.Context, s *domain.PomodoroSession) error
	// CountBetween counts completed sessions whose start_time falls in the
	// inclusive range. Aborted sessions are never counted.
	CountBetween(ctx context.Context, start, end time.Time) (int, error)
	RecentSessions(ctx context.Context, limit int) ([]*domain.PomodoroSession, error)
}

type ConfigRepo interface {
	Load(ctx context.Context) (domain.AppConfig, error)
	Save(ctx context.Context, cfg domain.AppConfig) error
}
