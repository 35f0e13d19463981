package cli

import (
	"context"
	"fmt"

	"github.com/dayekim/tripmate/internal/cli/formatter"
	"github.com/dayekim/tripmate/internal/recommend"
	"github.com/spf13/cobra"
)

func newMergeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <recommendation.json>",
		Short: "Merge a recommended plan into the current itinerary",
		Long: `Merge reads a recommendation file and appends its places to the
matching days of the current itinerary. Existing places are kept as-is;
days the trip did not cover yet are added. Merging the same file twice
adds its places twice.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := recommend.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("reading recommendation: %w", err)
			}
			if errs := recommend.ValidateSchema(schema); len(errs) > 0 {
				return formatValidationErrors(errs)
			}

			ctx := context.Background()
			if plan := recommend.ToPlan(schema); plan != nil {
				if err := app.Store.MergeRecommendation(ctx, plan); err != nil {
					return err
				}
			} else {
				// Flat-list payloads have no day structure; the places land
				// on the active day.
				places := recommend.ToPlaces(schema)
				if len(places) == 0 {
					return fmt.Errorf("recommendation %s has no places", args[0])
				}
				for i := range places {
					if err := app.Store.AddPlace(ctx, "", &places[i]); err != nil {
						return err
					}
				}
			}

			fmt.Print(formatter.FormatSchedule(app.Store.Schedule()))
			return nil
		},
	}

	return cmd
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("recommendation validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
