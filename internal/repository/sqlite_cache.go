package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dayekim/tripmate/internal/domain"
)

// Cache keys. The current schedule and the saved list each live under a
// single key as one JSON value.
const (
	currentScheduleKey = "mySchedule"
	savedSchedulesKey  = "mySavedSchedules"
)

// SQLiteCacheRepo implements Cache on a SQLite key/value table.
type SQLiteCacheRepo struct {
	db *sql.DB
}

// NewSQLiteCacheRepo creates a new SQLiteCacheRepo.
func NewSQLiteCacheRepo(db *sql.DB) *SQLiteCacheRepo {
	return &SQLiteCacheRepo{db: db}
}

func (r *SQLiteCacheRepo) SaveCurrent(ctx context.Context, s *domain.Schedule) error {
	return r.put(ctx, r.db, currentScheduleKey, s)
}

func (r *SQLiteCacheRepo) LoadCurrent(ctx context.Context) (*domain.Schedule, error) {
	raw, err := r.get(ctx, currentScheduleKey)
	if err != nil {
		return nil, err
	}
	var s domain.Schedule
	if err := json.Unmarshal(raw, &s); err != nil {
		// Corrupt snapshot: degrade to "no schedule", never a parse error.
		return nil, ErrNoSchedule
	}
	return &s, nil
}

func (r *SQLiteCacheRepo) ClearCurrent(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cache WHERE key = ?`, currentScheduleKey)
	if err != nil {
		return fmt.Errorf("clearing current schedule: %w", err)
	}
	return nil
}

// AppendSaved rewrites the whole saved sequence with the new entry appended.
// The read-modify-write runs in a transaction so concurrent appends cannot
// drop each other's entries.
func (r *SQLiteCacheRepo) AppendSaved(ctx context.Context, s *domain.Schedule) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	saved, err := r.listSaved(ctx, tx)
	if err != nil {
		return err
	}
	saved = append(saved, s)
	if err := r.put(ctx, tx, savedSchedulesKey, saved); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteCacheRepo) ListSaved(ctx context.Context) ([]*domain.Schedule, error) {
	return r.listSaved(ctx, r.db)
}

// queryer is the subset of *sql.DB / *sql.Tx the repo reads through.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *SQLiteCacheRepo) listSaved(ctx context.Context, q queryer) ([]*domain.Schedule, error) {
	var raw string
	err := q.QueryRowContext(ctx, `SELECT value FROM cache WHERE key = ?`, savedSchedulesKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading saved schedules: %w", err)
	}
	var saved []*domain.Schedule
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		// A corrupt sequence degrades to empty rather than blocking appends.
		return nil, nil
	}
	return saved, nil
}

func (r *SQLiteCacheRepo) get(ctx context.Context, key string) ([]byte, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM cache WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSchedule
	}
	if err != nil {
		return nil, fmt.Errorf("loading cache key %q: %w", key, err)
	}
	return []byte(raw), nil
}

func (r *SQLiteCacheRepo) put(ctx context.Context, q queryer, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializing cache key %q: %w", key, err)
	}
	query := `INSERT INTO cache (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := q.ExecContext(ctx, query, key, string(raw), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("writing cache key %q: %w", key, err)
	}
	return nil
}
