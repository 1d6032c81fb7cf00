package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/ritmo/internal/db"
	"github.com/alexanderramin/ritmo/internal/domain"
)

// SQLiteRestoreRepo writes backup-document rows with their original ids.
// Inserts are INSERT OR IGNORE: a row whose id already exists is skipped
// untouched, which is the "append" merge contract. Run it inside the import
// transaction so a failed document leaves nothing behind.
type SQLiteRestoreRepo struct {
	db db.DBTX
}

// NewSQLiteRestoreRepo creates a new SQLiteRestoreRepo.
func NewSQLiteRestoreRepo(db db.DBTX) *SQLiteRestoreRepo {
	return &SQLiteRestoreRepo{db: db}
}

// PurgeAll deletes records, sessions, then habits, for the replace strategy.
// Child tables go first so the habit delete has nothing left to cascade.
func (r *SQLiteRestoreRepo) PurgeAll(ctx context.Context) error {
	for _, table := range []string{"habit_records", "pomodoro_sessions", "habits"} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// InsertHabitRow reports whether the row was written; false means a row with
// the same id already existed and was left untouched.
func (r *SQLiteRestoreRepo) InsertHabitRow(ctx context.Context, h *domain.Habit) (bool, error) {
	query := `INSERT OR IGNORE INTO habits (id, name, description, category, target_per_week, enabled, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.Name,
		h.Description,
		h.Category,
		h.TargetPerWeek,
		boolToInt(h.Enabled),
		h.CreatedAt.Format(time.RFC3339),
		nullableTimeToString(h.DeletedAt, time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("restoring habit %d: %w", h.ID, err)
	}
	return rowWasInserted(res)
}

func (r *SQLiteRestoreRepo) InsertRecordRow(ctx context.Context, rec *domain.HabitRecord) (bool, error) {
	query := `INSERT OR IGNORE INTO habit_records (id, habit_id, date, is_completed, note, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.HabitID,
		domain.FormatDate(rec.Date),
		boolToInt(rec.IsCompleted),
		rec.Note,
		rec.RecordedAt.Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("restoring record %d: %w", rec.ID, err)
	}
	return rowWasInserted(res)
}

func (r *SQLiteRestoreRepo) InsertSessionRow(ctx context.Context, s *domain.PomodoroSession) (bool, error) {
	query := `INSERT OR IGNORE INTO pomodoro_sessions (id, habit_id, start_time, end_time, duration_seconds, status)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		s.ID,
		nullableInt64ToValue(s.HabitID),
		s.StartTime.Format(time.RFC3339),
		nullableTimeToString(s.EndTime, time.RFC3339),
		s.DurationSeconds,
		string(s.Status),
	)
	if err != nil {
		return false, fmt.Errorf("restoring session %d: %w", s.ID, err)
	}
	return rowWasInserted(res)
}

func rowWasInserted(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return n > 0, nil
}
