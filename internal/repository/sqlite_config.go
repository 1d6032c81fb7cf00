package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/ritmo/internal/db"
	"github.com/alexanderramin/ritmo/internal/domain"
)

// SQLiteConfigRepo implements ConfigRepo against the singleton app_config row.
type SQLiteConfigRepo struct {
	db db.DBTX
}

// NewSQLiteConfigRepo creates a new SQLiteConfigRepo.
func NewSQLiteConfigRepo(db db.DBTX) *SQLiteConfigRepo {
	return &SQLiteConfigRepo{db: db}
}

// Load returns the stored configuration, or the built-in defaults when the
// row is absent. Absence is not an error.
func (r *SQLiteConfigRepo) Load(ctx context.Context) (domain.AppConfig, error) {
	query := `SELECT work_minutes, short_break_minutes, long_break_minutes, long_break_interval
		FROM app_config WHERE id = 1`
	var cfg domain.AppConfig
	err := r.db.QueryRowContext(ctx, query).Scan(
		&cfg.WorkMinutes,
		&cfg.ShortBreakMinutes,
		&cfg.LongBreakMinutes,
		&cfg.LongBreakInterval,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.DefaultAppConfig(), nil
		}
		return domain.AppConfig{}, fmt.Errorf("loading app config: %w", err)
	}
	return cfg, nil
}

// Save upserts the singleton row, overwriting all four duration fields.
func (r *SQLiteConfigRepo) Save(ctx context.Context, cfg domain.AppConfig) error {
	query := `INSERT INTO app_config (id, work_minutes, short_break_minutes, long_break_minutes, long_break_interval)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			work_minutes = excluded.work_minutes,
			short_break_minutes = excluded.short_break_minutes,
			long_break_minutes = excluded.long_break_minutes,
			long_break_interval = excluded.long_break_interval`
	_, err := r.db.ExecContext(ctx, query,
		cfg.WorkMinutes,
		cfg.ShortBreakMinutes,
		cfg.LongBreakMinutes,
		cfg.LongBreakInterval,
	)
	if err != nil {
		return fmt.Errorf("saving app config: %w", err)
	}
	return nil
}
