package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/ritmo/internal/domain"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import the whole store as JSON",
	}

	cmd.AddCommand(
		newBackupExportCmd(app),
		newBackupImportCmd(app),
	)

	return cmd
}

func newBackupExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write habits, records, sessions and settings to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Backup.Export(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d habits, %d records, %d sessions to %s\n",
				result.Habits, result.Records, result.Sessions, result.Path)
			return nil
		},
	}
}

func newBackupImportCmd(app *App) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Restore a backup file",
		Long: `Restore a backup file into the store.

With --strategy append (the default), rows whose id already exists are
skipped and everything else is added. With --strategy replace, all habits,
records and sessions are deleted first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Backup.Import(context.Background(), args[0], domain.MergeStrategy(strategy))
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d habits, %d records, %d sessions (%s)\n",
				result.Habits, result.Records, result.Sessions, result.Strategy)
			if skipped := result.HabitsSkipped + result.RecordsSkipped + result.SessionsSkipped; skipped > 0 {
				fmt.Printf("Skipped %d rows that already existed\n", skipped)
			}
			if result.ConfigRestored {
				fmt.Println("Settings restored from backup")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", string(domain.MergeAppend), "Merge strategy: append or replace")

	return cmd
}
