package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/ritmo/internal/timer"
)

func newFocusCmd(app *App) *cobra.Command {
	var habitRef string
	var minutes int

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run a pomodoro timer",
		Long: `Run a pomodoro countdown in the terminal. The session is written to the
store only when it completes or is stopped; closing the terminal mid-run
leaves no trace.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive(app) {
				return fmt.Errorf("focus needs an interactive terminal")
			}
			ctx := context.Background()

			var habitID *int64
			habitName := ""
			if habitRef != "" {
				h, err := resolveHabit(ctx, app, habitRef)
				if err != nil {
					return err
				}
				habitID = &h.ID
				habitName = h.Name
			}

			if minutes == 0 {
				cfg, err := app.Settings.Get(ctx)
				if err != nil {
					return err
				}
				minutes = cfg.WorkMinutes
			}
			if minutes <= 0 {
				return fmt.Errorf("minutes must be positive")
			}

			tm := timer.New(app.Pomodoro)
			if err := tm.Start(habitID, time.Duration(minutes)*time.Minute); err != nil {
				return err
			}

			model := newFocusModel(tm, habitName)
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return err
			}

			m, ok := final.(focusModel)
			if !ok {
				return nil
			}
			if m.err != nil {
				return m.err
			}
			switch {
			case m.finished:
				fmt.Printf("Pomodoro complete — %d minutes. Take a break.\n", minutes)
			case m.aborted:
				fmt.Println("Pomodoro stopped; session recorded as aborted.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&habitRef, "habit", "", "Habit to link this session to (id or name)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Session length (defaults to the work setting)")

	return cmd
}
