package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dayekim/tripmate/internal/cli/formatter"
	"github.com/dayekim/tripmate/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage the current trip plan",
	}

	cmd.AddCommand(
		newPlanInitCmd(app),
		newPlanShowCmd(app),
		newPlanTransportCmd(app),
		newPlanBoardCmd(app),
		newPlanClearCmd(app),
	)

	return cmd
}

func newPlanInitCmd(app *App) *cobra.Command {
	var draft domain.Draft

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Start a new trip (replaces the current plan)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if draft.Date == "" {
				if !app.Interactive {
					return fmt.Errorf("--date is required in non-interactive mode")
				}
				collected, err := runPlanWizard()
				if err != nil {
					return err
				}
				draft = *collected
			}

			schedule, err := app.Store.InitFromDraft(context.Background(), draft)
			if err != nil {
				return err
			}

			fmt.Printf("Started trip %s → %s, %d days from %s\n",
				schedule.Departure, schedule.Arrival, schedule.Days, schedule.StartDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Departure, "from", "", "Departure city")
	cmd.Flags().StringVar(&draft.Arrival, "to", "", "Arrival city")
	cmd.Flags().StringVar(&draft.Date, "date", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&draft.Days, "days", 1, "Trip length in days")
	cmd.Flags().StringVar(&draft.GoTransport, "go", "", "Outbound leg descriptor (MODE | FROM → TO | HHMM → HHMM | COST원)")
	cmd.Flags().StringVar(&draft.ReturnTransport, "return", "", "Return leg descriptor")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current itinerary",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatSchedule(app.Store.Schedule()))
			return nil
		},
	}
}

func newPlanTransportCmd(app *App) *cobra.Command {
	var goLeg, returnLeg string

	cmd := &cobra.Command{
		Use:   "transport",
		Short: "Update the transport leg descriptors",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Store.Schedule()
			if s == nil {
				return fmt.Errorf("no trip planned yet, run \"tripmate plan init\" first")
			}
			if !cmd.Flags().Changed("go") {
				goLeg = s.GoTransport
			}
			if !cmd.Flags().Changed("return") {
				returnLeg = s.ReturnTransport
			}
			if err := app.Store.SetTransportLegs(context.Background(), goLeg, returnLeg); err != nil {
				return err
			}
			fmt.Print(formatter.FormatBudget(app.Store.Schedule()))
			return nil
		},
	}

	cmd.Flags().StringVar(&goLeg, "go", "", "Outbound leg descriptor")
	cmd.Flags().StringVar(&returnLeg, "return", "", "Return leg descriptor")

	return cmd
}

func newPlanClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard the current trip plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.Clear(context.Background()); err != nil {
				return err
			}
			fmt.Println("Plan cleared.")
			return nil
		},
	}
}

func newPlanBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive day-by-day board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return fmt.Errorf("the board needs an interactive terminal")
			}
			if app.Store.Schedule() == nil {
				return fmt.Errorf("no trip planned yet, run \"tripmate plan init\" first")
			}

			p := tea.NewProgram(newBoardModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
