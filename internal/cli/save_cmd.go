package cli

import (
	"context"
	"fmt"

	"github.com/dayekim/tripmate/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Finalize the trip and submit it to the trip service",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Store.Finalize(context.Background())
			if err != nil {
				if id != "" {
					// The save itself succeeded; only the local mirror failed.
					fmt.Printf("Saved as %s\n", id)
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
					return nil
				}
				return err
			}

			fmt.Printf("Saved as %s\n", id)
			return nil
		},
	}
}

func newSavedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Work with finalized schedules",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List finalized schedules mirrored locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			schedules, err := app.Store.SavedSchedules(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSavedList(schedules))
			return nil
		},
	})

	return cmd
}
