package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/ritmo/internal/cli/formatter"
	"github.com/alexanderramin/ritmo/internal/domain"
)

func newLogCmd(app *App) *cobra.Command {
	var dateStr, note string
	var missed bool

	cmd := &cobra.Command{
		Use:   "log HABIT",
		Short: "Log a habit as done (or missed) for today",
		Long: `Log a habit for today, or for another day with --date.
Logging the same day twice overwrites the earlier entry.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, app, args[0])
			if err != nil {
				return err
			}

			date := domain.Today()
			if dateStr != "" {
				date, err = domain.ParseDate(dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q: use YYYY-MM-DD", dateStr)
				}
			}

			rec, err := app.Records.SetStatusForDate(ctx, h.ID, date, !missed, note)
			if err != nil {
				return err
			}

			verb := "done"
			if !rec.IsCompleted {
				verb = "missed"
			}
			fmt.Printf("Logged %s as %s for %s\n", h.Name, verb, domain.FormatDate(rec.Date))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Day to log (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")
	cmd.Flags().BoolVar(&missed, "missed", false, "Log as missed instead of done")

	return cmd
}

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's status for every active habit",
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := app.Habits.TodayOverview(context.Background())
			if err != nil {
				return err
			}
			if len(overview) == 0 {
				fmt.Println("No active habits. Create one with `ritmo habit add`.")
				return nil
			}
			fmt.Print(formatter.FormatTodayOverview(overview))
			return nil
		},
	}
}

func newCalendarCmd(app *App) *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "calendar HABIT",
		Short: "Show a month of logged days for a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, app, args[0])
			if err != nil {
				return err
			}

			now := time.Now()
			year, month := now.Year(), now.Month()
			if monthStr != "" {
				parsed, err := time.Parse("2006-01", monthStr)
				if err != nil {
					return fmt.Errorf("invalid month %q: use YYYY-MM", monthStr)
				}
				year, month = parsed.Year(), parsed.Month()
			}

			days, err := app.Records.CalendarView(ctx, h.ID, year, month)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatCalendar(h.Name, year, month, days))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "Month to show (YYYY-MM, defaults to the current month)")

	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats HABIT",
		Short: "Show streaks and completion rates for a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, app, args[0])
			if err != nil {
				return err
			}
			stats, err := app.Habits.Stats(ctx, h.ID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatHabitStats(stats))
			return nil
		},
	}
}
