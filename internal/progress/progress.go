// Package progress computes longitudinal change between two metric
// snapshots and an aggregate progress score.
package progress

import (
	"math"
	"time"
)

// Aggregate score model: the score starts neutral and is rewarded for
// weight loss and posture improvement, each contribution capped.
const (
	baseScore        = 5.0
	weightLossWeight = 0.5
	weightLossCap    = 2.5
	postureWeight    = 0.5
	postureCap       = 2.5
	minScore         = 1.0
	maxScore         = 10.0
)

// Sample is the state recorded at one end of a tracking period.
type Sample struct {
	Date          time.Time `json:"date"`
	Weight        float64   `json:"weight"`
	PostureScore  float64   `json:"posture_score"`
	ShoulderSlope float64   `json:"shoulder_slope_degrees"`
}

// Snapshot is the longitudinal change over one period. Deltas are
// end minus start; a negative weight delta means loss.
type Snapshot struct {
	PeriodStart         time.Time `json:"period_start"`
	PeriodEnd           time.Time `json:"period_end"`
	WeightDelta         float64   `json:"weight_change"`
	PostureScoreDelta   float64   `json:"posture_score_change"`
	ShoulderImprovement float64   `json:"shoulder_improvement"`
	OverallScore        float64   `json:"overall_progress_score"`
}

// Compute derives the progress snapshot for the period bounded by the two
// samples. Weight loss is rewarded and weight gain is not penalized;
// posture change contributes in both directions. The aggregate score is
// clamped to [1.0, 10.0] and rounded to one decimal.
func Compute(start, end Sample) Snapshot {
	weightDelta := round1(end.Weight - start.Weight)
	postureDelta := round1(end.PostureScore - start.PostureScore)

	// Shoulder improvement is the reduction in slope magnitude.
	shoulderImprovement := round1(math.Abs(start.ShoulderSlope) - math.Abs(end.ShoulderSlope))

	score := baseScore
	if weightDelta < 0 {
		score += math.Min(math.Abs(weightDelta)*weightLossWeight, weightLossCap)
	}
	score += math.Min(postureDelta*postureWeight, postureCap)

	return Snapshot{
		PeriodStart:         start.Date,
		PeriodEnd:           end.Date,
		WeightDelta:         weightDelta,
		PostureScoreDelta:   postureDelta,
		ShoulderImprovement: shoulderImprovement,
		OverallScore:        math.Min(maxScore, math.Max(minScore, round1(score))),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
