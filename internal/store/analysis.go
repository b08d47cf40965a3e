package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/fitwave/fitwave/internal/analysis"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Analysis is a persisted posture analysis record. The scalar metric
// columns are denormalized from the metrics record for querying; a nil
// value means the metric was not measured.
type Analysis struct {
	ID            string
	ShoulderSlope *float64
	HipSlope      *float64
	HeadTilt      *float64
	KneeValgus    *float64
	PostureScore  float64
	Metrics       *analysis.Metrics
	CreatedAt     time.Time
}

// NewAnalysis builds a persistable record from a combined metrics record.
func NewAnalysis(id string, m *analysis.Metrics) *Analysis {
	a := &Analysis{
		ID:      id,
		Metrics: m,
	}
	if m == nil {
		return a
	}

	a.PostureScore = m.Score
	if m.Shoulder != nil {
		a.ShoulderSlope = &m.Shoulder.SlopeDegrees
	}
	if m.Hip != nil {
		a.HipSlope = &m.Hip.SlopeDegrees
	}
	if m.Head != nil {
		a.HeadTilt = &m.Head.TiltDegrees
	}
	if m.Knee != nil {
		a.KneeValgus = &m.Knee.ValgusIndicator
	}
	return a
}

// AnalysisRepository provides persistence for posture analyses.
type AnalysisRepository struct {
	db *sql.DB
}

// Analyses returns the analysis repository for this store.
func (s *Store) Analyses() *AnalysisRepository {
	return &AnalysisRepository{db: s.db}
}

// Create inserts a new analysis record.
func (r *AnalysisRepository) Create(a *Analysis) error {
	a.CreatedAt = time.Now()

	metricsJSON := []byte("{}")
	if a.Metrics != nil {
		var err error
		metricsJSON, err = json.Marshal(a.Metrics)
		if err != nil {
			return err
		}
	}

	_, err := r.db.Exec(
		`INSERT INTO posture_analyses
		 (id, shoulder_slope_degrees, hip_slope_degrees, head_tilt_degrees, knee_valgus_angle, posture_score, metrics, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.ShoulderSlope, a.HipSlope, a.HeadTilt, a.KneeValgus, a.PostureScore, string(metricsJSON), a.CreatedAt,
	)
	return err
}

// GetByID retrieves an analysis by its ID.
func (r *AnalysisRepository) GetByID(id string) (*Analysis, error) {
	row := r.db.QueryRow(
		`SELECT id, shoulder_slope_degrees, hip_slope_degrees, head_tilt_degrees, knee_valgus_angle, posture_score, metrics, created_at
		 FROM posture_analyses WHERE id = ?`,
		id,
	)
	return scanAnalysis(row)
}

// Latest retrieves the most recent analysis, or ErrNotFound when the
// store holds none.
func (r *AnalysisRepository) Latest() (*Analysis, error) {
	row := r.db.QueryRow(
		`SELECT id, shoulder_slope_degrees, hip_slope_degrees, head_tilt_degrees, knee_valgus_angle, posture_score, metrics, created_at
		 FROM posture_analyses ORDER BY created_at DESC LIMIT 1`,
	)
	return scanAnalysis(row)
}

// List retrieves the most recent analyses, newest first.
func (r *AnalysisRepository) List(limit int) ([]*Analysis, error) {
	rows, err := r.db.Query(
		`SELECT id, shoulder_slope_degrees, hip_slope_degrees, head_tilt_degrees, knee_valgus_angle, posture_score, metrics, created_at
		 FROM posture_analyses ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return analyses, nil
}

// FirstBetween retrieves the oldest analysis recorded inside the given
// time range, used to bound a progress period.
func (r *AnalysisRepository) FirstBetween(from, to time.Time) (*Analysis, error) {
	row := r.db.QueryRow(
		`SELECT id, shoulder_slope_degrees, hip_slope_degrees, head_tilt_degrees, knee_valgus_angle, posture_score, metrics, created_at
		 FROM posture_analyses WHERE created_at >= ? AND created_at <= ?
		 ORDER BY created_at ASC LIMIT 1`,
		from, to,
	)
	return scanAnalysis(row)
}

// LastBetween retrieves the newest analysis recorded inside the given
// time range.
func (r *AnalysisRepository) LastBetween(from, to time.Time) (*Analysis, error) {
	row := r.db.QueryRow(
		`SELECT id, shoulder_slope_degrees, hip_slope_degrees, head_tilt_degrees, knee_valgus_angle, posture_score, metrics, created_at
		 FROM posture_analyses WHERE created_at >= ? AND created_at <= ?
		 ORDER BY created_at DESC LIMIT 1`,
		from, to,
	)
	return scanAnalysis(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (*Analysis, error) {
	a := &Analysis{}
	var (
		shoulderSlope, hipSlope, headTilt, kneeValgus sql.NullFloat64
		metricsJSON                                   string
	)

	err := row.Scan(&a.ID, &shoulderSlope, &hipSlope, &headTilt, &kneeValgus, &a.PostureScore, &metricsJSON, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	a.ShoulderSlope = nullableFloat(shoulderSlope)
	a.HipSlope = nullableFloat(hipSlope)
	a.HeadTilt = nullableFloat(headTilt)
	a.KneeValgus = nullableFloat(kneeValgus)

	if metricsJSON != "" && metricsJSON != "{}" {
		m := &analysis.Metrics{}
		if err := json.Unmarshal([]byte(metricsJSON), m); err != nil {
			return nil, err
		}
		a.Metrics = m
	}

	return a, nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
