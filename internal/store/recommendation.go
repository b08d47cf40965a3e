package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/fitwave/fitwave/internal/recommend"
)

// Recommendation is a persisted recommendation linked to the analysis
// that produced it.
type Recommendation struct {
	ID         string
	AnalysisID string
	recommend.Recommendation
	CreatedAt time.Time
}

// RecommendationRepository provides persistence for recommendations.
type RecommendationRepository struct {
	db *sql.DB
}

// Recommendations returns the recommendation repository for this store.
func (s *Store) Recommendations() *RecommendationRepository {
	return &RecommendationRepository{db: s.db}
}

// Create inserts a new recommendation record.
func (r *RecommendationRepository) Create(rec *Recommendation) error {
	rec.CreatedAt = time.Now()

	steps, err := json.Marshal(rec.ActionSteps)
	if err != nil {
		return err
	}

	var analysisID any
	if rec.AnalysisID != "" {
		analysisID = rec.AnalysisID
	}

	_, err = r.db.Exec(
		`INSERT INTO recommendations
		 (id, analysis_id, category, priority, title, description, action_steps, is_completed, completed_at, expires_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, analysisID, string(rec.Category), string(rec.Priority), rec.Title, rec.Description,
		string(steps), rec.Completed, rec.CompletedAt, rec.ExpiresAt, rec.CreatedAt,
	)
	return err
}

// ListActive retrieves recommendations not yet marked complete, newest
// first.
func (r *RecommendationRepository) ListActive() ([]*Recommendation, error) {
	rows, err := r.db.Query(
		`SELECT id, analysis_id, category, priority, title, description, action_steps, is_completed, completed_at, expires_at, created_at
		 FROM recommendations WHERE is_completed = 0 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*Recommendation
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return recs, nil
}

// ListByAnalysis retrieves the recommendations produced by one analysis,
// in insertion order.
func (r *RecommendationRepository) ListByAnalysis(analysisID string) ([]*Recommendation, error) {
	rows, err := r.db.Query(
		`SELECT id, analysis_id, category, priority, title, description, action_steps, is_completed, completed_at, expires_at, created_at
		 FROM recommendations WHERE analysis_id = ? ORDER BY rowid ASC`,
		analysisID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*Recommendation
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return recs, nil
}

// MarkCompleted marks a recommendation as acted on.
func (r *RecommendationRepository) MarkCompleted(id string) error {
	result, err := r.db.Exec(
		`UPDATE recommendations SET is_completed = 1, completed_at = ? WHERE id = ?`,
		time.Now(), id,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanRecommendation(row rowScanner) (*Recommendation, error) {
	rec := &Recommendation{}
	var (
		analysisID             sql.NullString
		category, priority     string
		steps                  string
		completedAt, expiresAt sql.NullTime
	)

	err := row.Scan(&rec.ID, &analysisID, &category, &priority, &rec.Title, &rec.Description,
		&steps, &rec.Completed, &completedAt, &expiresAt, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rec.AnalysisID = analysisID.String
	rec.Category = recommend.Category(category)
	rec.Priority = recommend.Priority(priority)

	if err := json.Unmarshal([]byte(steps), &rec.ActionSteps); err != nil {
		return nil, err
	}
	if completedAt.Valid {
		t := completedAt.Time
		rec.CompletedAt = &t
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		rec.ExpiresAt = &t
	}

	return rec, nil
}
