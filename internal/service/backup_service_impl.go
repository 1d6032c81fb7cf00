package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/ritmo/internal/backup"
	"github.com/alexanderramin/ritmo/internal/db"
	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/repository"
)

// exportSessionLimit caps how many sessions a backup carries. High enough for
// years of daily use; keeps the file bounded for pathological stores.
const exportSessionLimit = 10000

type backupService struct {
	uow      db.UnitOfWork
	habits   repository.HabitRepo
	records  repository.RecordRepo
	sessions repository.SessionRepo
	config   repository.ConfigRepo
	observer UseCaseObserver
}

func NewBackupService(
	uow db.UnitOfWork,
	habits repository.HabitRepo,
	records repository.RecordRepo,
	sessions repository.SessionRepo,
	config repository.ConfigRepo,
	observers ...UseCaseObserver,
) BackupService {
	return &backupService{
		uow:      uow,
		habits:   habits,
		records:  records,
		sessions: sessions,
		config:   config,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *backupService) Export(ctx context.Context, path string) (result *ExportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:     "export-backup",
			Duration: time.Since(startedAt),
			Success:  err == nil,
			Err:      err,
			Fields:   fields,
		})
	}()

	// Soft-deleted and disabled habits are exported too; a backup is the whole
	// store, not the current view of it.
	habits, err := s.habits.List(ctx, false, true)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}

	doc := &backup.Document{
		Habits:    make([]backup.HabitExport, 0, len(habits)),
		Records:   []backup.RecordExport{},
		Pomodoros: []backup.SessionExport{},
	}
	for _, h := range habits {
		doc.Habits = append(doc.Habits, backup.NewHabitExport(h))
		records, err := s.records.AllByHabit(ctx, h.ID)
		if err != nil {
			return nil, fmt.Errorf("loading records for habit %d: %w", h.ID, err)
		}
		for _, r := range records {
			doc.Records = append(doc.Records, backup.NewRecordExport(r))
		}
	}

	sessions, err := s.sessions.RecentSessions(ctx, exportSessionLimit)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	for _, sess := range sessions {
		doc.Pomodoros = append(doc.Pomodoros, backup.NewSessionExport(sess))
	}

	cfg, err := s.config.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	doc.Config = backup.NewConfigExport(cfg)

	if err := backup.WriteDocument(path, doc); err != nil {
		return nil, err
	}

	fields["habits"] = len(doc.Habits)
	fields["records"] = len(doc.Records)
	fields["sessions"] = len(doc.Pomodoros)
	return &ExportResult{
		Path:     path,
		Habits:   len(doc.Habits),
		Records:  len(doc.Records),
		Sessions: len(doc.Pomodoros),
	}, nil
}

func (s *backupService) Import(ctx context.Context, path string, strategy domain.MergeStrategy) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path, "strategy": string(strategy)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:     "import-backup",
			Duration: time.Since(startedAt),
			Success:  err == nil,
			Err:      err,
			Fields:   fields,
		})
	}()

	if !domain.ValidMergeStrategies[string(strategy)] {
		return nil, fmt.Errorf("unknown merge strategy %q", strategy)
	}

	doc, err := backup.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	if errs := backup.ValidateDocument(doc); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	// Convert every row up front so a malformed timestamp fails the import
	// before the transaction opens.
	habits := make([]*domain.Habit, 0, len(doc.Habits))
	for _, e := range doc.Habits {
		h, convErr := e.ToDomain()
		if convErr != nil {
			return nil, convErr
		}
		habits = append(habits, h)
	}
	records := make([]*domain.HabitRecord, 0, len(doc.Records))
	for _, e := range doc.Records {
		r, convErr := e.ToDomain()
		if convErr != nil {
			return nil, convErr
		}
		records = append(records, r)
	}
	sessions := make([]*domain.PomodoroSession, 0, len(doc.Pomodoros))
	for _, e := range doc.Pomodoros {
		sess, convErr := e.ToDomain()
		if convErr != nil {
			return nil, convErr
		}
		sessions = append(sessions, sess)
	}

	result = &ImportResult{Strategy: strategy}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		restore := repository.NewSQLiteRestoreRepo(tx)

		if strategy == domain.MergeReplace {
			if err := restore.PurgeAll(ctx); err != nil {
				return err
			}
		}

		for _, h := range habits {
			inserted, err := restore.InsertHabitRow(ctx, h)
			if err != nil {
				return err
			}
			if inserted {
				result.Habits++
			} else {
				result.HabitsSkipped++
			}
		}
		for _, r := range records {
			inserted, err := restore.InsertRecordRow(ctx, r)
			if err != nil {
				return err
			}
			if inserted {
				result.Records++
			} else {
				result.RecordsSkipped++
			}
		}
		for _, sess := range sessions {
			inserted, err := restore.InsertSessionRow(ctx, sess)
			if err != nil {
				return err
			}
			if inserted {
				result.Sessions++
			} else {
				result.SessionsSkipped++
			}
		}

		// Config always wins when present, regardless of strategy.
		if doc.Config != nil {
			cfg := doc.Config.ToDomain()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("imported config: %w", err)
			}
			if err := repository.NewSQLiteConfigRepo(tx).Save(ctx, cfg); err != nil {
				return err
			}
			result.ConfigRestored = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["habits"] = result.Habits
	fields["records"] = result.Records
	fields["sessions"] = result.Sessions
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("backup validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
