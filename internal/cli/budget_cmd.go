package cli

import (
	"context"
	"fmt"

	"github.com/dayekim/tripmate/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBudgetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage the trip budget",
	}

	cmd.AddCommand(
		newBudgetSetCmd(app),
		newBudgetShowCmd(app),
	)

	return cmd
}

func newBudgetSetCmd(app *App) *cobra.Command {
	var accommodation, food, other string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the budget line items",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Store.Schedule()
			if s == nil {
				return fmt.Errorf("no trip planned yet, run \"tripmate plan init\" first")
			}

			// Unchanged flags keep their current value so a partial
			// "budget set --food 30000" does not zero the rest.
			if !cmd.Flags().Changed("accommodation") {
				accommodation = fmt.Sprintf("%d", s.Accommodation)
			}
			if !cmd.Flags().Changed("food") {
				food = fmt.Sprintf("%d", s.Food)
			}
			if !cmd.Flags().Changed("other") {
				other = fmt.Sprintf("%d", s.Other)
			}

			if err := app.Store.SetBudget(context.Background(), accommodation, food, other); err != nil {
				return err
			}
			fmt.Print(formatter.FormatBudget(app.Store.Schedule()))
			return nil
		},
	}

	cmd.Flags().StringVar(&accommodation, "accommodation", "", "Accommodation budget (KRW)")
	cmd.Flags().StringVar(&food, "food", "", "Food budget (KRW)")
	cmd.Flags().StringVar(&other, "other", "", "Other budget (KRW)")

	return cmd
}

func newBudgetShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the budget summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Store.Schedule()
			if s == nil {
				return fmt.Errorf("no trip planned yet, run \"tripmate plan init\" first")
			}
			fmt.Print(formatter.FormatBudget(s))
			return nil
		},
	}
}
