package repository

import (
	"context"
	"errors"

	"github.com/dayekim/tripmate/internal/domain"
)

// ErrNoSchedule reports that the cache holds no usable current schedule.
// Absent and corrupt snapshots are deliberately indistinguishable: a broken
// cache degrades to "no schedule" instead of propagating a parse error.
var ErrNoSchedule = errors.New("no schedule in cache")

// Cache is the local persistence mirror for the itinerary store. The cache
// has no identity of its own; every write replaces the whole value under a
// key (last-write-wins).
type Cache interface {
	// SaveCurrent replaces the working schedule snapshot.
	SaveCurrent(ctx context.Context, s *domain.Schedule) error
	// LoadCurrent returns the working schedule, or ErrNoSchedule.
	LoadCurrent(ctx context.Context) (*domain.Schedule, error)
	// ClearCurrent removes the working schedule.
	ClearCurrent(ctx context.Context) error
	// AppendSaved appends a finalized schedule to the saved sequence.
	AppendSaved(ctx context.Context, s *domain.Schedule) error
	// ListSaved returns previously finalized schedules in append order.
	ListSaved(ctx context.Context) ([]*domain.Schedule, error)
}
