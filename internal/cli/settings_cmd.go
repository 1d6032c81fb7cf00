package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/ritmo/internal/cli/formatter"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the timer settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatConfig(cfg))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var work, shortBreak, longBreak, interval int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !anyChanged(cmd.Flags(), "work", "short-break", "long-break", "interval") {
				return fmt.Errorf("nothing to change; pass at least one flag")
			}

			ctx := context.Background()
			cfg, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("work") {
				cfg.WorkMinutes = work
			}
			if cmd.Flags().Changed("short-break") {
				cfg.ShortBreakMinutes = shortBreak
			}
			if cmd.Flags().Changed("long-break") {
				cfg.LongBreakMinutes = longBreak
			}
			if cmd.Flags().Changed("interval") {
				cfg.LongBreakInterval = interval
			}

			if err := app.Settings.Update(ctx, cfg); err != nil {
				return err
			}
			fmt.Print(formatter.FormatConfig(cfg))
			return nil
		},
	}

	cmd.Flags().IntVar(&work, "work", 0, "Work minutes per pomodoro")
	cmd.Flags().IntVar(&shortBreak, "short-break", 0, "Short break minutes")
	cmd.Flags().IntVar(&longBreak, "long-break", 0, "Long break minutes")
	cmd.Flags().IntVar(&interval, "interval", 0, "Pomodoros before a long break")

	return cmd
}
