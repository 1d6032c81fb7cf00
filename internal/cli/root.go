package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/ritmo/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Habits   service.HabitService
	Records  service.RecordService
	Pomodoro service.PomodoroService
	Settings service.SettingsService
	Backup   service.BackupService

	// IsInteractive reports whether stdin is a terminal; the huh form and the
	// focus TUI refuse to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "ritmo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ritmo",
		Short: "Habit tracker with a pomodoro focus timer",
	}

	root.AddCommand(
		newHabitCmd(app),
		newLogCmd(app),
		newTodayCmd(app),
		newCalendarCmd(app),
		newStatsCmd(app),
		newFocusCmd(app),
		newSessionsCmd(app),
		newSettingsCmd(app),
		newBackupCmd(app),
	)

	return root
}

func interactive(app *App) bool {
	return app.IsInteractive != nil && app.IsInteractive()
}
