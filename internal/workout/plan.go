// Package workout generates training plans adapted to goal, fitness tier
// and detected posture imbalances.
package workout

import (
	"github.com/fitwave/fitwave/internal/analysis"
	"github.com/fitwave/fitwave/internal/profile"
)

// Tier is the coarse difficulty bucket derived from the activity multiplier.
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// Type classifies the dominant training modality of a plan.
type Type string

const (
	TypeStrength       Type = "strength"
	TypeCardio         Type = "cardio"
	TypeFlexibility    Type = "flexibility"
	TypeBalance        Type = "balance"
	TypeRehabilitation Type = "rehabilitation"
)

// Exercise is one prescribed movement. Either Sets/Reps or Duration is
// populated depending on whether the movement is rep-based or timed.
type Exercise struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets,omitempty"`
	Reps     string `json:"reps,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// Plan is a generated training plan. Plans are immutable once generated;
// a new analysis produces a new plan.
type Plan struct {
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Type             Type       `json:"workout_type"`
	Difficulty       Tier       `json:"difficulty"`
	DurationMinutes  int        `json:"duration_minutes"`
	Exercises        []Exercise `json:"exercises"`
	CorrectiveWarmup []Exercise `json:"corrective_warmup,omitempty"`
}

// TierFor maps an activity multiplier onto a fitness tier.
func TierFor(activityLevel float64) Tier {
	switch {
	case activityLevel <= 1.375:
		return TierBeginner
	case activityLevel <= 1.55:
		return TierIntermediate
	default:
		return TierAdvanced
	}
}

// Generate builds a plan for the profile's goal and fitness tier, adapted
// for the posture metrics when provided. Plan generation is a pure
// function of (goal, tier, imbalance flags); the same inputs always yield
// the same plan.
func Generate(p profile.Profile, posture *analysis.Metrics) Plan {
	tier := TierFor(p.ActivityLevel)

	var plan Plan
	switch p.Goal {
	case profile.GoalLose:
		plan = weightLossPlan(tier)
	case profile.GoalGain:
		plan = muscleGainPlan(tier)
	default:
		plan = maintenancePlan(tier)
	}

	if tier == TierAdvanced {
		scaleSets(plan.Exercises, 1)
	}

	if posture != nil {
		plan.CorrectiveWarmup = correctiveWarmup(posture)
	}

	return plan
}

// scaleSets bumps the set count of every rep-based exercise. Timed
// exercises keep their duration.
func scaleSets(exercises []Exercise, extra int) {
	for i := range exercises {
		if exercises[i].Sets > 0 {
			exercises[i].Sets += extra
		}
	}
}

// correctiveWarmup assembles the warm-up list from the imbalance→exercise
// mapping. The list is kept separate from the main body of the plan.
func correctiveWarmup(m *analysis.Metrics) []Exercise {
	var warmup []Exercise

	if m.Shoulder != nil && m.Shoulder.Imbalance {
		warmup = append(warmup, shoulderCorrectives...)
	}
	if m.Hip != nil && m.Hip.Imbalance {
		warmup = append(warmup, hipCorrectives...)
	}

	return warmup
}
