package testutil

import (
	"context"
	"errors"

	"github.com/dayekim/tripmate/internal/domain"
	"github.com/dayekim/tripmate/internal/repository"
)

// FakeCache is an in-memory Cache that counts writes, for asserting that
// operations skip redundant persistence.
type FakeCache struct {
	Current      *domain.Schedule
	Saved        []*domain.Schedule
	CurrentSaves int
}

var _ repository.Cache = (*FakeCache)(nil)

func (f *FakeCache) SaveCurrent(_ context.Context, s *domain.Schedule) error {
	f.CurrentSaves++
	f.Current = s.Clone()
	return nil
}

func (f *FakeCache) LoadCurrent(context.Context) (*domain.Schedule, error) {
	if f.Current == nil {
		return nil, repository.ErrNoSchedule
	}
	return f.Current.Clone(), nil
}

func (f *FakeCache) ClearCurrent(context.Context) error {
	f.Current = nil
	return nil
}

func (f *FakeCache) AppendSaved(_ context.Context, s *domain.Schedule) error {
	f.Saved = append(f.Saved, s.Clone())
	return nil
}

func (f *FakeCache) ListSaved(context.Context) ([]*domain.Schedule, error) {
	return f.Saved, nil
}

// FailingCache rejects every write, for verifying that persistence failures
// surface without rolling back in-memory state.
type FailingCache struct {
	FakeCache
}

var ErrCacheWrite = errors.New("cache write failed")

func (f *FailingCache) SaveCurrent(context.Context, *domain.Schedule) error {
	return ErrCacheWrite
}

func (f *FailingCache) AppendSaved(context.Context, *domain.Schedule) error {
	return ErrCacheWrite
}
