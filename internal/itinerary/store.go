// Package itinerary implements the authoritative in-memory schedule store:
// per-day ordered place lists, mutation operations, and write-through
// persistence to the local cache.
package itinerary

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayekim/tripmate/internal/domain"
	"github.com/dayekim/tripmate/internal/planner"
	"github.com/dayekim/tripmate/internal/repository"
	"github.com/dayekim/tripmate/internal/remote"
	"github.com/google/uuid"
)

// Store owns the live schedule aggregate. All mutations run synchronously to
// completion and write through to the injected cache; a failed cache write
// surfaces as an error but never rolls back the in-memory change.
//
// The store is not safe for concurrent use. Mutations are discrete
// responses to user actions and callers serialize them.
type Store struct {
	cache repository.Cache
	saver remote.SaveClient

	schedule   *domain.Schedule
	activeDate string
}

// NewStore creates a Store over the given cache and save collaborator.
// saver may be nil when finalizing is not needed (tests, offline use).
func NewStore(cache repository.Cache, saver remote.SaveClient) *Store {
	return &Store{cache: cache, saver: saver}
}

// Schedule returns the live aggregate, or nil before initialization.
func (s *Store) Schedule() *domain.Schedule { return s.schedule }

// ActiveDate returns the currently selected day, or "" when no schedule is
// loaded.
func (s *Store) ActiveDate() string { return s.activeDate }

// SetActiveDate selects a day. Unknown dates and the uninitialized state are
// silent no-ops; both occur transiently while views are being built.
func (s *Store) SetActiveDate(date string) {
	if s.schedule == nil {
		return
	}
	if _, ok := s.schedule.DailyPlan[date]; ok {
		s.activeDate = date
	}
}

// InitFromDraft builds a fresh schedule from a trip draft: one empty daily
// list per trip day, the first day selected, persisted immediately. Any
// previous schedule is replaced.
func (s *Store) InitFromDraft(ctx context.Context, d domain.Draft) (*domain.Schedule, error) {
	days := d.Days
	if days < 1 {
		days = 1
	}
	dates, err := domain.TripDates(d.Date, days)
	if err != nil {
		return nil, err
	}

	schedule := &domain.Schedule{
		Departure:       d.Departure,
		Arrival:         d.Arrival,
		StartDate:       dates[0],
		Days:            days,
		DailyPlan:       make(domain.DailyPlan, days),
		Places:          []domain.Place{},
		GoTransport:     d.GoTransport,
		ReturnTransport: d.ReturnTransport,
	}
	for _, date := range dates {
		schedule.DailyPlan[date] = []domain.Place{}
	}
	schedule.RecomputeBudget()

	s.schedule = schedule
	s.activeDate = dates[0]
	return schedule, s.persist(ctx)
}

// Rehydrate loads the last persisted snapshot. An absent or corrupt cache
// yields (nil, nil): initialization must never crash on a broken cache,
// only skip hydration. A snapshot without a places view gets one derived
// from its daily plan, and id-less places get identifiers assigned.
func (s *Store) Rehydrate(ctx context.Context) (*domain.Schedule, error) {
	schedule, err := s.cache.LoadCurrent(ctx)
	if errors.Is(err, repository.ErrNoSchedule) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rehydrating schedule: %w", err)
	}

	if schedule.DailyPlan == nil {
		schedule.DailyPlan = domain.DailyPlan{}
	}
	if schedule.Places == nil {
		schedule.RefreshPlacesView()
	}

	s.schedule = schedule
	s.activeDate = ""
	if dates := schedule.Dates(); len(dates) > 0 {
		s.activeDate = dates[0]
	}

	// Snapshots written before identifiers existed may hold id-less
	// places; reordering depends on every place carrying one.
	if _, err := s.EnsureIdentifiers(ctx); err != nil {
		return schedule, err
	}
	return schedule, nil
}

// AddPlace appends a normalized place to the given day ("" targets the
// active day). Missing schedule, day or place are silent no-ops.
func (s *Store) AddPlace(ctx context.Context, date string, p *domain.Place) error {
	if s.schedule == nil || p == nil {
		return nil
	}
	if date == "" {
		date = s.activeDate
	}
	if _, ok := s.schedule.DailyPlan[date]; !ok {
		return nil
	}

	place := *p
	place.ApplyDefaults(date)
	if place.ID == "" {
		place.ID = uuid.New().String()
	}

	s.schedule.DailyPlan[date] = append(s.schedule.DailyPlan[date], place)
	s.schedule.RefreshPlacesView()
	return s.persist(ctx)
}

// DeletePlace removes the entry at index from the given day. Out-of-range
// indexes are tolerated as no-ops.
func (s *Store) DeletePlace(ctx context.Context, date string, index int) error {
	if s.schedule == nil {
		return nil
	}
	places := s.schedule.DailyPlan[date]
	if index < 0 || index >= len(places) {
		return nil
	}

	s.schedule.DailyPlan[date] = append(places[:index:index], places[index+1:]...)
	s.schedule.RefreshPlacesView()
	return s.persist(ctx)
}

// Reorder moves a place within a single day. Equal or out-of-range indexes
// are no-ops and skip persistence.
func (s *Store) Reorder(ctx context.Context, date string, from, to int) error {
	if s.schedule == nil {
		return nil
	}
	places := s.schedule.DailyPlan[date]
	if from == to || from < 0 || from >= len(places) || to < 0 || to >= len(places) {
		return nil
	}

	s.schedule.DailyPlan[date] = planner.Reorder(places, from, to)
	s.schedule.RefreshPlacesView()
	return s.persist(ctx)
}

// MovePlace moves a place between days as one atomic operation, re-stamping
// its date to the destination day. Same-day moves degrade to Reorder. A
// cancelled drop (empty destination date) is a no-op.
func (s *Store) MovePlace(ctx context.Context, srcDate string, srcIdx int, dstDate string, dstIdx int) error {
	if s.schedule == nil || dstDate == "" {
		return nil
	}
	if srcDate == dstDate {
		return s.Reorder(ctx, srcDate, srcIdx, dstIdx)
	}

	src := s.schedule.DailyPlan[srcDate]
	dst := s.schedule.DailyPlan[dstDate]
	newSrc, newDst, ok := planner.Move(src, dst, srcIdx, dstIdx, dstDate)
	if !ok {
		return nil
	}

	s.schedule.DailyPlan[srcDate] = newSrc
	s.schedule.DailyPlan[dstDate] = newDst
	s.schedule.RefreshPlacesView()
	return s.persist(ctx)
}

// EnsureIdentifiers assigns a fresh identifier to every place lacking one
// and reports how many were assigned. It persists only when something
// changed, so a second run is a pure no-op.
func (s *Store) EnsureIdentifiers(ctx context.Context) (int, error) {
	if s.schedule == nil {
		return 0, nil
	}

	assigned := 0
	for date, places := range s.schedule.DailyPlan {
		for i := range places {
			if places[i].ID == "" {
				places[i].ID = uuid.New().String()
				assigned++
			}
		}
		s.schedule.DailyPlan[date] = places
	}
	if assigned == 0 {
		return 0, nil
	}

	s.schedule.RefreshPlacesView()
	return assigned, s.persist(ctx)
}

// SetBudget updates the three user-entered budget line items from raw form
// input and recomputes the derived total synchronously.
func (s *Store) SetBudget(ctx context.Context, accommodation, food, other string) error {
	if s.schedule == nil {
		return nil
	}
	s.schedule.Accommodation = domain.ParseAmount(accommodation)
	s.schedule.Food = domain.ParseAmount(food)
	s.schedule.Other = domain.ParseAmount(other)
	s.schedule.RecomputeBudget()
	return s.persist(ctx)
}

// SetTransportLegs replaces the transport leg descriptors and recomputes the
// budget, since leg costs feed the total.
func (s *Store) SetTransportLegs(ctx context.Context, goLeg, returnLeg string) error {
	if s.schedule == nil {
		return nil
	}
	s.schedule.GoTransport = goLeg
	s.schedule.ReturnTransport = returnLeg
	s.schedule.RecomputeBudget()
	return s.persist(ctx)
}

// Snapshot produces the fully-derived payload handed to the save
// collaborator. It works on a deep copy so in-flight edits cannot corrupt
// the payload: every place's date is re-stamped to its containing day
// (drag operations may have left stale dates in the cache), endDate is
// derived from the trip span, the budget total is recomputed, and the
// transport cost fields are fixed up. Bus stays 0: this model does not
// track bus cost separately, train carries both leg costs.
func (s *Store) Snapshot() *domain.Schedule {
	if s.schedule == nil {
		return nil
	}
	snap := s.schedule.Clone()

	for date, places := range snap.DailyPlan {
		for i := range places {
			places[i].Date = date
		}
		snap.DailyPlan[date] = places
	}
	snap.RefreshPlacesView()

	if dates, err := domain.TripDates(snap.StartDate, snap.Days); err == nil {
		snap.StartDate = dates[0]
		snap.EndDate = dates[len(dates)-1]
	}

	snap.Train = domain.ParseTransportCost(snap.GoTransport) + domain.ParseTransportCost(snap.ReturnTransport)
	snap.Bus = 0
	snap.RecomputeBudget()
	return snap
}

// Finalize submits the current snapshot to the save collaborator. On
// success the assigned identifier is recorded and the finalized schedule is
// mirrored into the saved sequence; on failure nothing is rolled back — the
// schedule stays in memory and cache, and the error is surfaced for the
// user to retry.
func (s *Store) Finalize(ctx context.Context) (string, error) {
	if s.schedule == nil {
		return "", ErrNoSchedule
	}
	if s.saver == nil {
		return "", errors.New("no save endpoint configured")
	}

	snap := s.Snapshot()
	result, err := s.saver.Save(ctx, snap)
	if err != nil {
		return "", fmt.Errorf("saving schedule: %w", err)
	}

	snap.ID = result.ID
	// Mirror best-effort: a failed append must not undo a successful save.
	if err := s.cache.AppendSaved(ctx, snap); err != nil {
		return result.ID, fmt.Errorf("schedule saved as %s, but mirroring locally failed: %w", result.ID, err)
	}
	return result.ID, nil
}

// Clear discards the current schedule, both in memory and in the cache.
// The saved list is untouched.
func (s *Store) Clear(ctx context.Context) error {
	s.schedule = nil
	s.activeDate = ""
	return s.cache.ClearCurrent(ctx)
}

// SavedSchedules lists every finalized schedule mirrored locally, oldest
// first.
func (s *Store) SavedSchedules(ctx context.Context) ([]*domain.Schedule, error) {
	return s.cache.ListSaved(ctx)
}

// persist writes the live schedule through to the cache. Best-effort: the
// in-memory state is already updated when this runs and is kept regardless.
func (s *Store) persist(ctx context.Context) error {
	if err := s.cache.SaveCurrent(ctx, s.schedule); err != nil {
		return fmt.Errorf("persisting schedule: %w", err)
	}
	return nil
}
