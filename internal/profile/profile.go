// Package profile defines the user inputs supplied by the profile and
// measurement collaborators.
package profile

import "errors"

// ErrIncomplete is returned when a profile lacks the fields an estimate needs.
var ErrIncomplete = errors.New("profile incomplete")

// Gender is the profile gender code.
type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

// Goal is the user's training goal.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// Activity multipliers recognized by the fitness-tier mapping.
var ActivityLevels = []float64{1.2, 1.375, 1.55, 1.725, 1.9}

// Profile is the anthropometric input from the profile collaborator.
// Age and Gender are zero-valued when unknown; estimators that need them
// must decline rather than guess.
type Profile struct {
	BMI           float64 `json:"bmi"`
	Age           int     `json:"age"`
	Gender        Gender  `json:"gender"`
	ActivityLevel float64 `json:"activity_level"`
	Goal          Goal    `json:"goal"`
}

// Measurements is the optional girth input from the measurement
// collaborator. WHR is the waist-to-hip circumference ratio; when only
// raw circumferences are supplied the ratio is derived from them.
type Measurements struct {
	WHR   float64 `json:"whr,omitempty"`
	Waist float64 `json:"waist_cm,omitempty"`
	Hip   float64 `json:"hip_cm,omitempty"`
}

// Ratio returns the waist-hip ratio and whether one is available, deriving
// it from raw circumferences when an explicit WHR is absent.
func (m *Measurements) Ratio() (float64, bool) {
	if m == nil {
		return 0, false
	}
	if m.WHR > 0 {
		return m.WHR, true
	}
	if m.Waist > 0 && m.Hip > 0 {
		return m.Waist / m.Hip, true
	}
	return 0, false
}
