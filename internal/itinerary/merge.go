package itinerary

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/dayekim/tripmate/internal/domain"
	"github.com/dayekim/tripmate/internal/recommend"
	"github.com/google/uuid"
)

var (
	// ErrNoSchedule reports a merge or finalize attempted before any
	// schedule exists.
	ErrNoSchedule = errors.New("no active schedule")

	// ErrNoRecommendation reports a recommendation payload without a
	// daily plan.
	ErrNoRecommendation = errors.New("recommendation has no daily plan")
)

// MergeRecommendation merges a recommended plan into the current schedule
// additively: recommended places are appended to their day, existing
// entries are never replaced or reordered, and days the trip did not
// originally cover are created. Missing identifiers are assigned before
// insertion.
//
// The merge is at-least-once, not idempotent: identifiers are generated
// per call when absent, so re-merging the same payload duplicates entries.
//
// Invalid input (no schedule, no plan) fails before any state changes.
func (s *Store) MergeRecommendation(ctx context.Context, plan *recommend.Plan) error {
	if s.schedule == nil {
		return ErrNoSchedule
	}
	if plan == nil || plan.DailyPlan == nil {
		return ErrNoRecommendation
	}

	// Deterministic merge order; map iteration would persist the same
	// result but log/observe in varying order.
	dates := make([]string, 0, len(plan.DailyPlan))
	for d := range plan.DailyPlan {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, date := range dates {
		if _, ok := s.schedule.DailyPlan[date]; !ok {
			s.schedule.DailyPlan[date] = []domain.Place{}
		}
		for _, p := range plan.DailyPlan[date] {
			p.ApplyDefaults(date)
			if p.ID == "" {
				p.ID = uuid.New().String()
			}
			s.schedule.DailyPlan[date] = append(s.schedule.DailyPlan[date], p)
		}
	}

	s.extendTripSpan()
	s.schedule.RefreshPlacesView()
	return s.persist(ctx)
}

// extendTripSpan keeps startDate/days consistent after a merge introduced
// dates outside the original range: the range grows to cover the full span
// of the daily plan, with empty lists filling any gap days.
func (s *Store) extendTripSpan() {
	var first, last time.Time
	for date := range s.schedule.DailyPlan {
		t, err := time.Parse(domain.DateLayout, date)
		if err != nil {
			continue
		}
		if first.IsZero() || t.Before(first) {
			first = t
		}
		if last.IsZero() || t.After(last) {
			last = t
		}
	}
	if first.IsZero() {
		return
	}

	days := int(last.Sub(first).Hours()/24) + 1

	s.schedule.StartDate = first.Format(domain.DateLayout)
	s.schedule.Days = days
	for i := 0; i < days; i++ {
		date := first.AddDate(0, 0, i).Format(domain.DateLayout)
		if _, ok := s.schedule.DailyPlan[date]; !ok {
			s.schedule.DailyPlan[date] = []domain.Place{}
		}
	}
}
