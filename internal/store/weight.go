package store

import (
	"database/sql"
	"errors"
	"time"
)

// WeightEntry is one dated weight measurement.
type WeightEntry struct {
	ID         string
	Weight     float64
	RecordedAt time.Time
}

// WeightRepository provides persistence for the weight log.
type WeightRepository struct {
	db *sql.DB
}

// Weights returns the weight log repository for this store.
func (s *Store) Weights() *WeightRepository {
	return &WeightRepository{db: s.db}
}

// Create inserts a new weight entry.
func (r *WeightRepository) Create(e *WeightEntry) error {
	_, err := r.db.Exec(
		`INSERT INTO weight_log (id, weight, recorded_at) VALUES (?, ?, ?)`,
		e.ID, e.Weight, e.RecordedAt,
	)
	return err
}

// FirstBetween retrieves the oldest weight entry inside the given range.
func (r *WeightRepository) FirstBetween(from, to time.Time) (*WeightEntry, error) {
	row := r.db.QueryRow(
		`SELECT id, weight, recorded_at FROM weight_log
		 WHERE recorded_at >= ? AND recorded_at <= ? ORDER BY recorded_at ASC LIMIT 1`,
		from, to,
	)
	return scanWeight(row)
}

// LastBetween retrieves the newest weight entry inside the given range.
func (r *WeightRepository) LastBetween(from, to time.Time) (*WeightEntry, error) {
	row := r.db.QueryRow(
		`SELECT id, weight, recorded_at FROM weight_log
		 WHERE recorded_at >= ? AND recorded_at <= ? ORDER BY recorded_at DESC LIMIT 1`,
		from, to,
	)
	return scanWeight(row)
}

func scanWeight(row rowScanner) (*WeightEntry, error) {
	e := &WeightEntry{}
	err := row.Scan(&e.ID, &e.Weight, &e.RecordedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}
