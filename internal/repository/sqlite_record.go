package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/ritmo/internal/db"
	"github.com/alexanderramin/ritmo/internal/domain"
)

// SQLiteRecordRepo implements RecordRepo using a SQLite database.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(db db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: db}
}

// Upsert writes the completion state for (habitID, date). An existing row is
// overwritten in place — completion flag, note, and recorded_at — so the
// (habit_id, date) key never duplicates.
func (r *SQLiteRecordRepo) Upsert(ctx context.Context, habitID int64, date time.Time, isCompleted bool, note string) (*domain.HabitRecord, error) {
	query := `INSERT INTO habit_records (habit_id, date, is_completed, note, recorded_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, date) DO UPDATE SET
			is_completed = excluded.is_completed,
			note = excluded.note,
			recorded_at = excluded.recorded_at`
	_, err := r.db.ExecContext(ctx, query,
		habitID,
		domain.FormatDate(date),
		boolToInt(isCompleted),
		note,
		nowUTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("upserting habit record: %w", err)
	}
	// Re-read rather than trust LastInsertId: on conflict SQLite updates in
	// place and the insert rowid is not meaningful.
	return r.GetByHabitAndDate(ctx, habitID, date)
}

func (r *SQLiteRecordRepo) GetByHabitAndDate(ctx context.Context, habitID int64, date time.Time) (*domain.HabitRecord, error) {
	query := `SELECT id, habit_id, date, is_completed, note, recorded_at
		FROM habit_records WHERE habit_id = ? AND date = ?`
	row := r.db.QueryRowContext(ctx, query, habitID, domain.FormatDate(date))
	return r.scanRecord(row)
}

func (r *SQLiteRecordRepo) FetchRange(ctx context.Context, habitID int64, start, end time.Time) ([]*domain.HabitRecord, error) {
	query := `SELECT id, habit_id, date, is_completed, note, recorded_at
		FROM habit_records
		WHERE habit_id = ? AND date BETWEEN ? AND ?
		ORDER BY date ASC`
	rows, err := r.db.QueryContext(ctx, query, habitID, domain.FormatDate(start), domain.FormatDate(end))
	if err != nil {
		return nil, fmt.Errorf("fetching record range: %w", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLiteRecordRepo) CountCompletedSince(ctx context.Context, habitID int64, windowDays int) (int, error) {
	start := domain.Today().AddDate(0, 0, -(windowDays - 1))
	query := `SELECT COUNT(*) FROM habit_records
		WHERE habit_id = ? AND date >= ? AND is_completed = 1`
	var count int
	err := r.db.QueryRowContext(ctx, query, habitID, domain.FormatDate(start)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting completed records: %w", err)
	}
	return count, nil
}

func (r *SQLiteRecordRepo) AllByHabit(ctx context.Context, habitID int64) ([]*domain.HabitRecord, error) {
	query := `SELECT id, habit_id, date, is_completed, note, recorded_at
		FROM habit_records
		WHERE habit_id = ?
		ORDER BY date ASC`
	rows, err := r.db.QueryContext(ctx, query, habitID)
	if err != nil {
		return nil, fmt.Errorf("listing records by habit: %w", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

// scanRecord scans a single record from a *sql.Row.
func (r *SQLiteRecordRepo) scanRecord(row *sql.Row) (*domain.HabitRecord, error) {
	var rec domain.HabitRecord
	var completed int
	var dateStr, recordedAtStr string

	err := row.Scan(&rec.ID, &rec.HabitID, &dateStr, &completed, &rec.Note, &recordedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning habit record: %w", err)
	}

	return r.populateRecord(&rec, dateStr, recordedAtStr, completed)
}

// scanRecords scans multiple records from *sql.Rows.
func (r *SQLiteRecordRepo) scanRecords(rows *sql.Rows) ([]*domain.HabitRecord, error) {
	var records []*domain.HabitRecord
	for rows.Next() {
		var rec domain.HabitRecord
		var completed int
		var dateStr, recordedAtStr string

		if err := rows.Scan(&rec.ID, &rec.HabitID, &dateStr, &completed, &rec.Note, &recordedAtStr); err != nil {
			return nil, fmt.Errorf("scanning record row: %w", err)
		}

		record, parseErr := r.populateRecord(&rec, dateStr, recordedAtStr, completed)
		if parseErr != nil {
			return nil, parseErr
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

// populateRecord fills in parsed fields after scanning raw strings.
func (r *SQLiteRecordRepo) populateRecord(rec *domain.HabitRecord, dateStr, recordedAtStr string, completed int) (*domain.HabitRecord, error) {
	var parseErr error
	rec.Date, parseErr = domain.ParseDate(dateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing date: %w", parseErr)
	}
	rec.RecordedAt, parseErr = time.Parse(time.RFC3339, recordedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing recorded_at: %w", parseErr)
	}
	rec.IsCompleted = intToBool(completed)
	return rec, nil
}
