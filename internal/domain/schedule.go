package domain

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the calendar date format used for daily plan keys.
const DateLayout = "2006-01-02"

// DailyPlan maps a calendar date (YYYY-MM-DD) to the ordered list of places
// visited that day. Order within a day is visiting order.
type DailyPlan map[string][]Place

// Draft is the minimal trip outline supplied by the planner flow before any
// places exist: endpoints, start date, length and optional transport legs.
type Draft struct {
	Departure       string `json:"departure"`
	Arrival         string `json:"arrival"`
	Date            string `json:"date"`
	Days            int    `json:"days"`
	GoTransport     string `json:"goTransport"`
	ReturnTransport string `json:"returnTransport"`
}

// Schedule is the aggregate root of a planned trip. Places is a flattened
// convenience view over DailyPlan in date order; TotalBudget is derived and
// never user-set. Bus and Train are transport cost fields fixed up when the
// save snapshot is computed.
type Schedule struct {
	ID              string    `json:"id,omitempty"`
	Departure       string    `json:"departure"`
	Arrival         string    `json:"arrival"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate,omitempty"`
	Days            int       `json:"days"`
	DailyPlan       DailyPlan `json:"dailyPlan"`
	Places          []Place   `json:"places"`
	GoTransport     string    `json:"goTransport"`
	ReturnTransport string    `json:"returnTransport"`
	Accommodation   int       `json:"accommodation"`
	Food            int       `json:"food"`
	Other           int       `json:"other"`
	Bus             int       `json:"bus"`
	Train           int       `json:"train"`
	TotalBudget     int       `json:"totalBudget"`
	IsShared        bool      `json:"isShared"`
}

// TripDates returns the consecutive calendar dates of a trip starting at
// start (YYYY-MM-DD) and spanning days entries. days below 1 is treated as 1.
func TripDates(start string, days int) ([]string, error) {
	t, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	if days < 1 {
		days = 1
	}
	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, t.AddDate(0, 0, i).Format(DateLayout))
	}
	return dates, nil
}

// Dates returns the daily plan keys in chronological order. ISO date strings
// sort lexically, so a plain string sort is sufficient.
func (s *Schedule) Dates() []string {
	dates := make([]string, 0, len(s.DailyPlan))
	for d := range s.DailyPlan {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// FlattenPlaces returns every place across all days, in date order and
// visiting order within each day.
func (s *Schedule) FlattenPlaces() []Place {
	var out []Place
	for _, d := range s.Dates() {
		out = append(out, s.DailyPlan[d]...)
	}
	return out
}

// RefreshPlacesView recomputes the flattened Places view from DailyPlan.
func (s *Schedule) RefreshPlacesView() {
	s.Places = s.FlattenPlaces()
}

// Clone returns a deep copy of the schedule. Snapshots handed to the save
// collaborator are taken from a clone so in-flight edits cannot corrupt the
// payload.
func (s *Schedule) Clone() *Schedule {
	c := *s
	c.DailyPlan = make(DailyPlan, len(s.DailyPlan))
	for d, places := range s.DailyPlan {
		c.DailyPlan[d] = clonePlaces(places)
	}
	c.Places = clonePlaces(s.Places)
	return &c
}

// clonePlaces deep-copies a place list. Nilness is preserved: a snapshot
// without a places view must still look view-less after cloning so loaders
// can tell "absent" from "empty".
func clonePlaces(places []Place) []Place {
	if places == nil {
		return nil
	}
	out := make([]Place, len(places))
	for i, p := range places {
		out[i] = p
		if p.Lat != nil {
			lat := *p.Lat
			out[i].Lat = &lat
		}
		if p.Lng != nil {
			lng := *p.Lng
			out[i].Lng = &lng
		}
	}
	return out
}
