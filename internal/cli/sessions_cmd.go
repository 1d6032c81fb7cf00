package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/ritmo/internal/cli/formatter"
)

func newSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect pomodoro sessions",
	}

	cmd.AddCommand(
		newSessionsListCmd(app),
		newSessionsStatsCmd(app),
	)

	return cmd
}

func newSessionsListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sessions, err := app.Pomodoro.RecentSessions(ctx, limit)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions yet. Start one with `ritmo focus`.")
				return nil
			}

			// Include deleted habits so old sessions still show a name.
			habits, err := app.Habits.List(ctx, false, true)
			if err != nil {
				return err
			}
			names := make(map[int64]string, len(habits))
			for _, h := range habits {
				names[h.ID] = h.Name
			}

			fmt.Print(formatter.FormatSessionList(sessions, names))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum sessions to show")

	return cmd
}

func newSessionsStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completed-session counts for today, this week and this month",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := app.Pomodoro.Counts(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSessionCounts(counts))
			return nil
		},
	}
}
