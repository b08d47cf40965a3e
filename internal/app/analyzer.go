// Package app orchestrates pose estimation, posture analysis and
// persistence for one FitWave analysis request.
package app

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/fitwave/fitwave/internal/analysis"
	"github.com/fitwave/fitwave/internal/body"
	"github.com/fitwave/fitwave/internal/pose"
	"github.com/fitwave/fitwave/internal/profile"
	"github.com/fitwave/fitwave/internal/progress"
	"github.com/fitwave/fitwave/internal/recommend"
	"github.com/fitwave/fitwave/internal/store"
	"github.com/fitwave/fitwave/internal/workout"
)

// FallbackScore is the posture score substituted when no view produced a
// detectable pose.
const FallbackScore = 5.0

// MaxStoredRecommendations caps how many recommendations one analysis may
// persist. The rule engine itself is uncapped; truncation is a policy of
// this layer and relies on the engine's stable output order.
const MaxStoredRecommendations = 3

// samplePad is how far around a period boundary to look for a matching
// weight or analysis record.
const samplePad = 3 * 24 * time.Hour

// ErrNoImages is returned when an analysis is requested without any view.
var ErrNoImages = errors.New("at least one photograph view is required")

// Config holds configuration options for the analyzer.
type Config struct {
	Store     *store.Store
	Estimator pose.Estimator
}

// Analyzer runs the full posture pipeline: estimation, keypoint
// normalization, metrics, scoring, recommendations, and optional
// persistence.
type Analyzer struct {
	config    Config
	estimator pose.Estimator
}

// New creates a new Analyzer with the given configuration.
func New(config Config) *Analyzer {
	a := &Analyzer{
		config:    config,
		estimator: config.Estimator,
	}

	if a.estimator == nil {
		// Try MediaPipe first, fall back to the mock estimator
		if mp, err := pose.NewMediaPipeEstimator(pose.DefaultConfig()); err == nil {
			a.estimator = mp
			log.Println("Using MediaPipe pose estimation")
		} else {
			log.Printf("MediaPipe not available (%v), using mock estimator", err)
			a.estimator = pose.NewMockEstimator()
		}
	}

	return a
}

// Close releases the underlying estimator.
func (a *Analyzer) Close() error {
	if a.estimator != nil {
		return a.estimator.Close()
	}
	return nil
}

// Result is the outcome of one posture analysis request.
type Result struct {
	ID              string                     `json:"id"`
	Metrics         *analysis.Metrics          `json:"metrics"`
	Front           *analysis.Metrics          `json:"front,omitempty"`
	Back            *analysis.Metrics          `json:"back,omitempty"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Detected        bool                       `json:"detected"`
}

// AnalyzePosture runs the posture pipeline over a front-view and an
// optional back-view image. The front view takes precedence; the back
// view supplies hip metrics only when the front produced none, and the
// combined score is the mean of both views. When no view yields a pose
// the documented fallback applies: a fixed score of 5.0 and exactly one
// generic recommendation. Estimator failures degrade to missing views
// rather than failing the analysis; only persistence can return an error.
func (a *Analyzer) AnalyzePosture(front, back *gocv.Mat) (*Result, error) {
	if front == nil && back == nil {
		return nil, ErrNoImages
	}

	frontMetrics := a.analyzeView("front", front)
	backMetrics := a.analyzeView("back", back)

	result := &Result{
		ID:    uuid.New().String(),
		Front: frontMetrics,
		Back:  backMetrics,
	}

	combined := analysis.Combine(frontMetrics, backMetrics)
	if combined == nil {
		combined = &analysis.Metrics{Score: FallbackScore}
		result.Recommendations = []recommend.Recommendation{recommend.Fallback()}
	} else {
		result.Detected = true
		result.Recommendations = recommend.ForPosture(combined)
	}
	result.Metrics = combined

	if err := a.persist(result); err != nil {
		return nil, err
	}

	return result, nil
}

// analyzeView runs estimation and metrics for a single view. A nil image,
// an estimator failure, or a no-detection frame all yield nil metrics;
// the view simply contributes nothing to the combined record.
func (a *Analyzer) analyzeView(name string, image *gocv.Mat) *analysis.Metrics {
	if image == nil {
		return nil
	}

	frame, err := a.estimator.Estimate(image)
	if err != nil {
		log.Printf("Pose estimation failed for %s view: %v", name, err)
		return nil
	}
	if !frame.Detected() {
		log.Printf("No pose detected in %s view", name)
		return nil
	}

	keypoints := pose.ExtractKeypoints(frame)
	metrics := analysis.Analyze(keypoints)
	return &metrics
}

// persist writes the analysis and its capped recommendation list when a
// store is configured.
func (a *Analyzer) persist(result *Result) error {
	if a.config.Store == nil {
		return nil
	}

	record := store.NewAnalysis(result.ID, result.Metrics)
	if err := a.config.Store.Analyses().Create(record); err != nil {
		return fmt.Errorf("persist analysis: %w", err)
	}

	recs := result.Recommendations
	if len(recs) > MaxStoredRecommendations {
		recs = recs[:MaxStoredRecommendations]
	}

	for _, rec := range recs {
		stored := &store.Recommendation{
			ID:             uuid.New().String(),
			AnalysisID:     result.ID,
			Recommendation: rec,
		}
		if err := a.config.Store.Recommendations().Create(stored); err != nil {
			return fmt.Errorf("persist recommendation: %w", err)
		}
	}

	return nil
}

// EstimateBody derives a body composition estimate from profile and
// measurement inputs.
func (a *Analyzer) EstimateBody(p profile.Profile, m *profile.Measurements) (*body.Estimate, error) {
	return body.EstimateComposition(p, m)
}

// GenerateWorkout builds a workout plan for the profile, adapted for the
// latest stored posture analysis when one exists.
func (a *Analyzer) GenerateWorkout(p profile.Profile) (workout.Plan, error) {
	var metrics *analysis.Metrics

	if a.config.Store != nil {
		latest, err := a.config.Store.Analyses().Latest()
		switch {
		case err == nil:
			metrics = latest.Metrics
		case errors.Is(err, store.ErrNotFound):
			// No prior analysis; generate an unadapted plan.
		default:
			return workout.Plan{}, err
		}
	}

	return workout.Generate(p, metrics), nil
}

// Progress computes the progress snapshot for a period from stored weight
// and analysis history. Records within a few days of each boundary count
// for that boundary. ErrNotFound is returned when the store holds no
// usable pair of records for the period.
func (a *Analyzer) Progress(start, end time.Time) (*progress.Snapshot, error) {
	if a.config.Store == nil {
		return nil, store.ErrNotFound
	}

	startSample := progress.Sample{Date: start}
	endSample := progress.Sample{Date: end}
	found := false

	startWeight, err := a.config.Store.Weights().FirstBetween(start, start.Add(samplePad))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	endWeight, err := a.config.Store.Weights().LastBetween(end.Add(-samplePad), end)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if startWeight != nil && endWeight != nil {
		startSample.Weight = startWeight.Weight
		endSample.Weight = endWeight.Weight
		found = true
	}

	startAnalysis, err := a.config.Store.Analyses().FirstBetween(start, start.Add(samplePad))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	endAnalysis, err := a.config.Store.Analyses().LastBetween(end.Add(-samplePad), end)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if startAnalysis != nil && endAnalysis != nil {
		startSample.PostureScore = startAnalysis.PostureScore
		endSample.PostureScore = endAnalysis.PostureScore
		if startAnalysis.ShoulderSlope != nil {
			startSample.ShoulderSlope = *startAnalysis.ShoulderSlope
		}
		if endAnalysis.ShoulderSlope != nil {
			endSample.ShoulderSlope = *endAnalysis.ShoulderSlope
		}
		found = true
	}

	if !found {
		return nil, store.ErrNotFound
	}

	snapshot := progress.Compute(startSample, endSample)
	return &snapshot, nil
}
