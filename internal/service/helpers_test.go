package service

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/ritmo/internal/repository"
	"github.com/alexanderramin/ritmo/internal/testutil"
)

// serviceFixture wires every service over one in-memory database so tests
// can mix layers, e.g. log records through RecordService and read streaks
// through HabitService.
type serviceFixture struct {
	db       *sql.DB
	habits   HabitService
	records  RecordService
	pomodoro PomodoroService
	settings SettingsService
	backup   BackupService

	habitRepo   repository.HabitRepo
	recordRepo  repository.RecordRepo
	sessionRepo repository.SessionRepo
	configRepo  repository.ConfigRepo
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	database := testutil.NewTestDB(t)

	habitRepo := repository.NewSQLiteHabitRepo(database)
	recordRepo := repository.NewSQLiteRecordRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	configRepo := repository.NewSQLiteConfigRepo(database)
	uow := testutil.NewTestUoW(database)

	return &serviceFixture{
		db:          database,
		habits:      NewHabitService(habitRepo, recordRepo),
		records:     NewRecordService(habitRepo, recordRepo),
		pomodoro:    NewPomodoroService(sessionRepo),
		settings:    NewSettingsService(configRepo),
		backup:      NewBackupService(uow, habitRepo, recordRepo, sessionRepo, configRepo),
		habitRepo:   habitRepo,
		recordRepo:  recordRepo,
		sessionRepo: sessionRepo,
		configRepo:  configRepo,
	}
}
