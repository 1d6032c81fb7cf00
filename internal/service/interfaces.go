package service

import (
	"context"
	"time"

	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/stats"
)

type HabitService interface {
	Create(ctx context.Context, h *domain.Habit) error
	Update(ctx context.Context, h *domain.Habit) error
	SoftDelete(ctx context.Context, id int64) error
	// Purge removes the habit row and its records permanently. Sessions that
	// referenced it survive with a nil habit id.
	Purge(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Habit, error)
	List(ctx context.Context, enabledOnly, includeDeleted bool) ([]*domain.Habit, error)
	Stats(ctx context.Context, id int64) (*HabitStats, error)
	TodayOverview(ctx context.Context) ([]TodayHabit, error)
}

type RecordService interface {
	SetTodayStatus(ctx context.Context, habitID int64, completed bool, note string) (*domain.HabitRecord, error)
	SetStatusForDate(ctx context.Context, habitID int64, date time.Time, completed bool, note string) (*domain.HabitRecord, error)
	CalendarView(ctx context.Context, habitID int64, year int, month time.Month) ([]CalendarDay, error)
}

type PomodoroService interface {
	// FinishSession persists a session that reached a terminal status. Running
	// sessions are rejected; a crash mid-session leaves no row behind.
	FinishSession(ctx context.Context, s *domain.PomodoroSession) error
	RecentSessions(ctx context.Context, limit int) ([]*domain.PomodoroSession, error)
	Counts(ctx context.Context) (*SessionCounts, error)
}

type SettingsService interface {
	Get(ctx context.Context) (domain.AppConfig, error)
	Update(ctx context.Context, cfg domain.AppConfig) error
}

type BackupService interface {
	Export(ctx context.Context, path string) (*ExportResult, error)
	Import(ctx context.Context, path string, strategy domain.MergeStrategy) (*ImportResult, error)
}

// HabitStats bundles the streak and completion numbers for one habit.
type HabitStats struct {
	Habit         *domain.Habit
	CurrentStreak int
	LongestStreak int
	Last7         stats.Completion
	Last30        stats.Completion
}

// TodayHabit is one row of the daily overview: the habit plus whether a
// record exists for today and, if so, its status.
type TodayHabit struct {
	Habit     *domain.Habit
	Logged    bool
	Completed bool
	Note      string
}

// CalendarDay is one cell of a month view.
type CalendarDay struct {
	Date      time.Time
	Logged    bool
	Completed bool
}

// SessionCounts holds completed-session totals over rolling windows.
type SessionCounts struct {
	Today int
	Week  int
	Month int
}

// ExportResult summarizes a written backup file.
type ExportResult struct {
	Path     string
	Habits   int
	Records  int
	Sessions int
}

// ImportResult summarizes an applied backup file. Counts are rows actually
// written; with the append strategy, rows skipped over an id collision are
// not counted.
type ImportResult struct {
	Strategy        domain.MergeStrategy
	Habits          int
	Records         int
	Sessions        int
	ConfigRestored  bool
	HabitsSkipped   int
	RecordsSkipped  int
	SessionsSkipped int
}
