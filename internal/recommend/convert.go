package recommend

import (
	"github.com/dayekim/tripmate/internal/domain"
	"github.com/google/uuid"
)

// Plan is a normalized schedule recommendation ready for merging.
type Plan struct {
	DailyPlan domain.DailyPlan
}

// ToPlan converts a validated schema's dailyPlan into normalized domain
// places: default fields filled, every place stamped onto its day and given
// an identifier when it lacks one. Call ValidateSchema first; ToPlan
// assumes the schema is valid. Returns nil when the payload has no
// dailyPlan (flat-place path).
func ToPlan(schema *Schema) *Plan {
	if schema == nil || schema.DailyPlan == nil {
		return nil
	}
	plan := &Plan{DailyPlan: make(domain.DailyPlan, len(schema.DailyPlan))}
	for date, places := range schema.DailyPlan {
		converted := make([]domain.Place, 0, len(places))
		for _, p := range places {
			converted = append(converted, toPlace(p, date))
		}
		plan.DailyPlan[date] = converted
	}
	return plan
}

// ToPlaces converts the flat place list of a validated schema. Places
// without a date are left unstamped; the store assigns the active day.
func ToPlaces(schema *Schema) []domain.Place {
	if schema == nil {
		return nil
	}
	out := make([]domain.Place, 0, len(schema.Places))
	for _, p := range schema.Places {
		out = append(out, toPlace(p, p.Date))
	}
	return out
}

func toPlace(p PlaceImport, date string) domain.Place {
	place := domain.Place{
		ID:       string(p.ID),
		Name:     p.Name,
		Category: p.Category,
		Lat:      p.Lat,
		Lng:      p.Lng,
	}
	place.ApplyDefaults(date)
	if place.ID == "" {
		place.ID = uuid.New().String()
	}
	return place
}
