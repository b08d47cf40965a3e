// Package body estimates body composition from anthropometric inputs.
package body

import (
	"math"

	"github.com/fitwave/fitwave/internal/profile"
)

// Body fat bounds in percent.
const (
	minBodyFat = 5.0
	maxBodyFat = 50.0
)

// Visceral fat level bounds.
const (
	minVisceral = 1
	maxVisceral = 30
)

// Shape classifies the body silhouette from the waist-hip ratio.
type Shape string

const (
	ShapeApple     Shape = "apple"
	ShapePear      Shape = "pear"
	ShapeRectangle Shape = "rectangle"
)

// Shape classification thresholds on WHR. These are deliberately
// gender-agnostic even though the visceral-fat breakpoints are not.
const (
	appleWHR = 0.85
	pearWHR  = 0.75
)

// Estimate is a per-analysis body composition estimate. VisceralFat and
// BodyShape are only produced when a waist-hip ratio was available.
type Estimate struct {
	BodyFat     float64 `json:"estimated_body_fat"`
	MuscleMass  float64 `json:"estimated_muscle_mass"`
	VisceralFat *int    `json:"visceral_fat_level,omitempty"`
	BodyShape   Shape   `json:"body_shape_type,omitempty"`
}

// EstimateComposition derives a body composition estimate from the profile and
// optional girth measurements. The formulas are closed-form: body fat from
// BMI, age and gender; muscle mass from the fat remainder; visceral fat
// and silhouette shape from the waist-hip ratio when one is available.
// Profiles missing age or gender yield ErrIncomplete rather than a guess.
func EstimateComposition(p profile.Profile, m *profile.Measurements) (*Estimate, error) {
	if p.Age <= 0 || p.Gender == "" || p.BMI <= 0 {
		return nil, profile.ErrIncomplete
	}

	bodyFat := 1.20*p.BMI + 0.23*float64(p.Age)
	if p.Gender == profile.Male {
		bodyFat -= 16.2
	} else {
		bodyFat -= 5.4
	}
	bodyFat = clamp(round1(bodyFat), minBodyFat, maxBodyFat)

	est := &Estimate{
		BodyFat:    bodyFat,
		MuscleMass: round1((100 - bodyFat) * 0.45),
	}

	if whr, ok := m.Ratio(); ok {
		level := visceralLevel(whr, p.Gender)
		est.VisceralFat = &level
		est.BodyShape = classifyShape(whr)
	}

	return est, nil
}

// visceralLevel maps WHR to a visceral fat level with gender-specific
// breakpoints: above the breakpoint the level grows linearly from a base,
// below it the level is proportional to WHR. Clamped to [1, 30].
func visceralLevel(whr float64, gender profile.Gender) int {
	var level float64
	if gender == profile.Male {
		if whr > 1.0 {
			level = 15 + (whr-1.0)*20
		} else {
			level = whr * 12
		}
	} else {
		if whr > 0.85 {
			level = 10 + (whr-0.85)*25
		} else {
			level = whr * 10
		}
	}
	return int(clamp(math.Round(level), minVisceral, maxVisceral))
}

// classifyShape buckets the silhouette by WHR. The thresholds apply to all
// genders in the classification step; only the visceral-fat model is
// gender-specific.
func classifyShape(whr float64) Shape {
	switch {
	case whr > appleWHR:
		return ShapeApple
	case whr < pearWHR:
		return ShapePear
	default:
		return ShapeRectangle
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
