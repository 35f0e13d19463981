package testutil

import (
	"github.com/dayekim/tripmate/internal/domain"
	"github.com/google/uuid"
)

// Place options
type PlaceOption func(*domain.Place)

func WithCategory(c string) PlaceOption {
	return func(p *domain.Place) {
		p.Category = c
	}
}

func WithCoords(lat, lng float64) PlaceOption {
	return func(p *domain.Place) {
		p.Lat = &lat
		p.Lng = &lng
	}
}

func WithoutID() PlaceOption {
	return func(p *domain.Place) {
		p.ID = ""
	}
}

// NewTestPlace builds a place stamped onto the given day.
func NewTestPlace(name, date string, opts ...PlaceOption) domain.Place {
	p := domain.Place{
		ID:       uuid.New().String(),
		Name:     name,
		Category: domain.DefaultPlaceCategory,
		Date:     date,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestSchedule builds a schedule with empty daily lists spanning the
// given start date and length.
func NewTestSchedule(start string, days int) *domain.Schedule {
	dates, err := domain.TripDates(start, days)
	if err != nil {
		panic(err)
	}
	s := &domain.Schedule{
		Departure: "서울",
		Arrival:   "부산",
		StartDate: start,
		Days:      days,
		DailyPlan: make(domain.DailyPlan, len(dates)),
		Places:    []domain.Place{},
	}
	for _, d := range dates {
		s.DailyPlan[d] = []domain.Place{}
	}
	return s
}
