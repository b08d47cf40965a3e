// Package recommend maps flagged posture conditions to prioritized,
// actionable recommendations.
package recommend

import "time"

// Category classifies what a recommendation is about.
type Category string

const (
	CategoryExercise  Category = "exercise"
	CategoryNutrition Category = "nutrition"
	CategoryPosture   Category = "posture"
	CategoryLifestyle Category = "lifestyle"
	CategoryRecovery  Category = "recovery"
)

// Priority orders recommendations by urgency.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Recommendation is one corrective advice record. It is immutable after
// creation except for completion marking.
type Recommendation struct {
	Category    Category   `json:"category"`
	Priority    Priority   `json:"priority"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ActionSteps []string   `json:"action_steps"`
	Completed   bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// MarkCompleted records that the user acted on the recommendation.
func (r *Recommendation) MarkCompleted() {
	now := time.Now()
	r.Completed = true
	r.CompletedAt = &now
}

// Fallback is the designated factory for the single recommendation emitted
// when no rule fires or when no detailed analysis was possible. Callers
// always receive a real Recommendation value and never branch on shape.
func Fallback() Recommendation {
	return Recommendation{
		Category:    CategoryPosture,
		Priority:    PriorityLow,
		Title:       "Posture within normal range",
		Description: "No posture deviations were detected. Continue maintaining an active lifestyle.",
		ActionSteps: []string{
			"Do a short daily mobility routine",
			"Watch your posture during desk work",
		},
	}
}
