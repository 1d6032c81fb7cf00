package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/ritmo/internal/cli"
	"github.com/alexanderramin/ritmo/internal/db"
	"github.com/alexanderramin/ritmo/internal/repository"
	"github.com/alexanderramin/ritmo/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.ritmo/ritmo.db
	dbPath := os.Getenv("RITMO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ritmo", "ritmo.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	habitRepo := repository.NewSQLiteHabitRepo(database)
	recordRepo := repository.NewSQLiteRecordRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	configRepo := repository.NewSQLiteConfigRepo(database)

	// Wire unit of work for the all-or-nothing backup import
	uow := db.NewSQLiteUnitOfWork(database)

	// Optional use-case log, enabled with RITMO_LOG=1
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("RITMO_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Habits:   service.NewHabitService(habitRepo, recordRepo),
		Records:  service.NewRecordService(habitRepo, recordRepo),
		Pomodoro: service.NewPomodoroService(sessionRepo, observer),
		Settings: service.NewSettingsService(configRepo),
		Backup:   service.NewBackupService(uow, habitRepo, recordRepo, sessionRepo, configRepo, observer),
	}

	// Detect interactive terminal for the form and the focus TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
