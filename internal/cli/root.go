package cli

import (
	"github.com/dayekim/tripmate/internal/itinerary"
	"github.com/spf13/cobra"
)

// App holds the shared state CLI commands operate on.
type App struct {
	Store *itinerary.Store

	// Interactive is true when stdin/stdout are a terminal; it gates the
	// plan wizard and the board.
	Interactive bool
}

// NewRootCmd creates the top-level "tripmate" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tripmate",
		Short: "Trip itinerary planner and budget tracker",
	}

	root.AddCommand(
		newPlanCmd(app),
		newPlaceCmd(app),
		newBudgetCmd(app),
		newMergeCmd(app),
		newSaveCmd(app),
		newSavedCmd(app),
	)

	return root
}
