package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/ritmo/internal/db"
	"github.com/alexanderramin/ritmo/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
// The table is an append-only log; rows are never updated.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Append(ctx context.Context, s *domain.PomodoroSession) error {
	query := `INSERT INTO pomodoro_sessions (habit_id, start_time, end_time, duration_seconds, status)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		nullableInt64ToValue(s.HabitID),
		s.StartTime.Format(time.RFC3339),
		nullableTimeToString(s.EndTime, time.RFC3339),
		s.DurationSeconds,
		string(s.Status),
	)
	if err != nil {
		return fmt.Errorf("inserting pomodoro session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading session id: %w", err)
	}
	s.ID = id
	return nil
}

func (r *SQLiteSessionRepo) CountBetween(ctx context.Context, start, end time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM pomodoro_sessions
		WHERE start_time BETWEEN ? AND ? AND status = 'completed'`
	var count int
	err := r.db.QueryRowContext(ctx, query,
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting sessions: %w", err)
	}
	return count, nil
}

func (r *SQLiteSessionRepo) RecentSessions(ctx context.Context, limit int) ([]*domain.PomodoroSession, error) {
	query := `SELECT id, habit_id, start_time, end_time, duration_seconds, status
		FROM pomodoro_sessions
		ORDER BY start_time DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.PomodoroSession
	for rows.Next() {
		var s domain.PomodoroSession
		var habitID sql.NullInt64
		var statusStr, startStr string
		var endStr sql.NullString

		if err := rows.Scan(&s.ID, &habitID, &startStr, &endStr, &s.DurationSeconds, &statusStr); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		s.Status = domain.SessionStatus(statusStr)
		if habitID.Valid {
			id := habitID.Int64
			s.HabitID = &id
		}

		var parseErr error
		s.StartTime, parseErr = time.Parse(time.RFC3339, startStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing start_time: %w", parseErr)
		}
		s.EndTime = parseNullableTime(endStr, time.RFC3339)

		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}
