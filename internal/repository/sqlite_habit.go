package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/ritmo/internal/db"
	"github.com/alexanderramin/ritmo/internal/domain"
)

// SQLiteHabitRepo implements HabitRepo using a SQLite database.
type SQLiteHabitRepo struct {
	db db.DBTX
}

// NewSQLiteHabitRepo creates a new SQLiteHabitRepo.
func NewSQLiteHabitRepo(db db.DBTX) *SQLiteHabitRepo {
	return &SQLiteHabitRepo{db: db}
}

func (r *SQLiteHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}
	if h.Category == "" {
		h.Category = domain.DefaultCategory
	}
	query := `INSERT INTO habits (name, description, category, target_per_week, enabled, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		h.Name,
		h.Description,
		h.Category,
		h.TargetPerWeek,
		boolToInt(h.Enabled),
		h.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting habit: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading habit id: %w", err)
	}
	h.ID = id
	return nil
}

// Update overwrites the editable fields by id. CreatedAt and DeletedAt are
// never touched here.
func (r *SQLiteHabitRepo) Update(ctx context.Context, h *domain.Habit) error {
	query := `UPDATE habits SET name = ?, description = ?, category = ?, target_per_week = ?, enabled = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		h.Name,
		h.Description,
		h.Category,
		h.TargetPerWeek,
		boolToInt(h.Enabled),
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("updating habit: %w", err)
	}
	return nil
}

// SoftDelete disables the habit and stamps deleted_at. Rows stay in place so
// historical records remain queryable.
func (r *SQLiteHabitRepo) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE habits SET enabled = 0, deleted_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("soft-deleting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM habits WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) GetByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Habit, error) {
	query := `SELECT id, name, description, category, target_per_week, enabled, created_at, deleted_at
		FROM habits WHERE id = ?`
	if !includeDeleted {
		query += ` AND deleted_at IS NULL`
	}
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanHabit(row)
}

func (r *SQLiteHabitRepo) List(ctx context.Context, enabledOnly, includeDeleted bool) ([]*domain.Habit, error) {
	query := `SELECT id, name, description, category, target_per_week, enabled, created_at, deleted_at
		FROM habits WHERE 1=1`
	if enabledOnly {
		query += ` AND enabled = 1`
	}
	if !includeDeleted {
		query += ` AND deleted_at IS NULL`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	defer rows.Close()

	var habits []*domain.Habit
	for rows.Next() {
		h, err := r.scanHabitFromRows(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habits: %w", err)
	}
	return habits, nil
}

// scanHabit scans a single habit row from a *sql.Row.
func (r *SQLiteHabitRepo) scanHabit(row *sql.Row) (*domain.Habit, error) {
	var h domain.Habit
	var enabled int
	var createdAtStr string
	var deletedAtStr sql.NullString

	err := row.Scan(
		&h.ID, &h.Name, &h.Description, &h.Category,
		&h.TargetPerWeek, &enabled, &createdAtStr, &deletedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning habit: %w", err)
	}

	h.Enabled = intToBool(enabled)

	var parseErr error
	h.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	h.DeletedAt = parseNullableTime(deletedAtStr, time.RFC3339)

	return &h, nil
}

// scanHabitFromRows scans a single habit row from *sql.Rows.
func (r *SQLiteHabitRepo) scanHabitFromRows(rows *sql.Rows) (*domain.Habit, error) {
	var h domain.Habit
	var enabled int
	var createdAtStr string
	var deletedAtStr sql.NullString

	err := rows.Scan(
		&h.ID, &h.Name, &h.Description, &h.Category,
		&h.TargetPerWeek, &enabled, &createdAtStr, &deletedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning habit row: %w", err)
	}

	h.Enabled = intToBool(enabled)

	var parseErr error
	h.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	h.DeletedAt = parseNullableTime(deletedAtStr, time.RFC3339)

	return &h, nil
}
