package cli

import (
	"context"
	"fmt"

	"github.com/dayekim/tripmate/internal/cli/formatter"
	"github.com/dayekim/tripmate/internal/domain"
	"github.com/spf13/cobra"
)

func newPlaceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Manage places on the itinerary",
	}

	cmd.AddCommand(
		newPlaceAddCmd(app),
		newPlaceRemoveCmd(app),
		newPlaceMoveCmd(app),
	)

	return cmd
}

// requireDay validates that the schedule exists and covers the given date,
// so mistyped dates fail loudly at the CLI instead of no-opping.
func requireDay(app *App, date string) error {
	s := app.Store.Schedule()
	if s == nil {
		return fmt.Errorf("no trip planned yet, run \"tripmate plan init\" first")
	}
	if date == "" {
		return nil
	}
	if _, ok := s.DailyPlan[date]; !ok {
		return fmt.Errorf("day %s is not part of this trip (%s, %d days)", date, s.StartDate, s.Days)
	}
	return nil
}

func newPlaceAddCmd(app *App) *cobra.Command {
	var date dateValue
	var name, category string
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a place to a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDay(app, string(date)); err != nil {
				return err
			}

			p := &domain.Place{Name: name, Category: category}
			if cmd.Flags().Changed("lat") {
				p.Lat = &lat
			}
			if cmd.Flags().Changed("lng") {
				p.Lng = &lng
			}

			if err := app.Store.AddPlace(context.Background(), string(date), p); err != nil {
				return err
			}

			day := string(date)
			if day == "" {
				day = app.Store.ActiveDate()
			}
			fmt.Print(formatter.FormatDay(app.Store.Schedule(), day))
			return nil
		},
	}

	cmd.Flags().Var(&date, "date", "Day to add to (YYYY-MM-DD, defaults to the active day)")
	cmd.Flags().StringVar(&name, "name", "", "Place name")
	cmd.Flags().StringVar(&category, "category", "", "Category (food, sights, hotel, ...)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude")

	return cmd
}

func newPlaceRemoveCmd(app *App) *cobra.Command {
	var date dateValue
	var position int

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a place from a day by position",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDay(app, string(date)); err != nil {
				return err
			}
			if position < 1 {
				return fmt.Errorf("position is 1-based")
			}

			if err := app.Store.DeletePlace(context.Background(), string(date), position-1); err != nil {
				return err
			}
			fmt.Print(formatter.FormatDay(app.Store.Schedule(), string(date)))
			return nil
		},
	}

	cmd.Flags().Var(&date, "date", "Day to remove from (YYYY-MM-DD)")
	cmd.Flags().IntVar(&position, "pos", 0, "Position within the day (1-based)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("pos")

	return cmd
}

func newPlaceMoveCmd(app *App) *cobra.Command {
	var fromDate, toDate dateValue
	var fromPos, toPos int

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a place within a day or to another day",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDay(app, string(fromDate)); err != nil {
				return err
			}
			if toDate == "" {
				toDate = fromDate
			}
			if err := requireDay(app, string(toDate)); err != nil {
				return err
			}
			if fromPos < 1 || toPos < 1 {
				return fmt.Errorf("positions are 1-based")
			}

			err := app.Store.MovePlace(context.Background(), string(fromDate), fromPos-1, string(toDate), toPos-1)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatDay(app.Store.Schedule(), string(toDate)))
			return nil
		},
	}

	cmd.Flags().Var(&fromDate, "date", "Source day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&fromPos, "pos", 0, "Source position (1-based)")
	cmd.Flags().Var(&toDate, "to-date", "Destination day (defaults to the source day)")
	cmd.Flags().IntVar(&toPos, "to-pos", 0, "Destination position (1-based)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("pos")
	_ = cmd.MarkFlagRequired("to-pos")

	return cmd
}
