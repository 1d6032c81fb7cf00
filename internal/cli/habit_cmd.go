package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/ritmo/internal/cli/formatter"
	"github.com/alexanderramin/ritmo/internal/domain"
)

func newHabitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}

	cmd.AddCommand(
		newHabitAddCmd(app),
		newHabitListCmd(app),
		newHabitEditCmd(app),
		newHabitRemoveCmd(app),
		newHabitPurgeCmd(app),
	)

	return cmd
}

func newHabitAddCmd(app *App) *cobra.Command {
	var name, description, category string
	var target int

	cmd := &cobra.Command{
		Use:   "add [NAME]",
		Short: "Create a new habit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				name = args[0]
			}

			h := &domain.Habit{
				Name:          name,
				Description:   description,
				Category:      category,
				TargetPerWeek: target,
			}

			// With no name anywhere, fall back to the interactive form.
			if h.Name == "" {
				if !interactive(app) {
					return fmt.Errorf("habit name is required (or run interactively)")
				}
				if err := runHabitForm(h); err != nil {
					return err
				}
			}

			if err := app.Habits.Create(context.Background(), h); err != nil {
				return err
			}
			fmt.Printf("Created habit %s (id %d)\n", h.Name, h.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "What this habit is about")
	cmd.Flags().StringVar(&category, "category", "", "Category (defaults to \"uncategorized\")")
	cmd.Flags().IntVar(&target, "target", 0, "Target completions per week (1-7, defaults to 7)")

	return cmd
}

func newHabitListCmd(app *App) *cobra.Command {
	var all, deleted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := app.Habits.List(context.Background(), !all, deleted)
			if err != nil {
				return err
			}
			if len(habits) == 0 {
				fmt.Println("No habits yet. Create one with `ritmo habit add`.")
				return nil
			}
			fmt.Print(formatter.FormatHabitList(habits))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include disabled habits")
	cmd.Flags().BoolVar(&deleted, "deleted", false, "Include soft-deleted habits")

	return cmd
}

func newHabitEditCmd(app *App) *cobra.Command {
	var name, description, category string
	var target int
	var enable, disable bool

	cmd := &cobra.Command{
		Use:   "edit HABIT",
		Short: "Edit a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !anyChanged(cmd.Flags(), "name", "description", "category", "target", "enable", "disable") {
				return fmt.Errorf("nothing to change; pass at least one flag")
			}

			ctx := context.Background()
			h, err := resolveHabit(ctx, app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				h.Name = name
			}
			if cmd.Flags().Changed("description") {
				h.Description = description
			}
			if cmd.Flags().Changed("category") {
				h.Category = category
			}
			if cmd.Flags().Changed("target") {
				h.TargetPerWeek = target
			}
			if enable {
				h.Enabled = true
			}
			if disable {
				h.Enabled = false
			}

			if err := app.Habits.Update(ctx, h); err != nil {
				return err
			}
			fmt.Printf("Updated habit %s\n", h.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().IntVar(&target, "target", 0, "New weekly target (1-7)")
	cmd.Flags().BoolVar(&enable, "enable", false, "Re-enable the habit")
	cmd.Flags().BoolVar(&disable, "disable", false, "Disable the habit without deleting it")
	cmd.MarkFlagsMutuallyExclusive("enable", "disable")

	return cmd
}

func newHabitRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove HABIT",
		Short: "Soft-delete a habit, keeping its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Habits.SoftDelete(ctx, h.ID); err != nil {
				return err
			}
			fmt.Printf("Removed habit %s. Its records are kept; use `habit purge` to erase them.\n", h.Name)
			return nil
		},
	}
}

func newHabitPurgeCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "purge ID",
		Short: "Permanently delete a habit and all its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("purge is irreversible; pass --yes to confirm")
			}
			// Takes a raw id, not a name: purge must reach soft-deleted
			// habits, which name resolution never sees.
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid habit id %q", args[0])
			}
			if err := app.Habits.Purge(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Purged habit %d and its records\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm permanent deletion")

	return cmd
}
