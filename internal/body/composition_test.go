package body

import (
	"errors"
	"testing"

	"github.com/fitwave/fitwave/internal/profile"
)

func TestEstimateComposition_MaleBaseline(t *testing.T) {
	p := profile.Profile{BMI: 24, Age: 30, Gender: profile.Male}

	est, err := EstimateComposition(p, nil)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}

	// 1.20*24 + 0.23*30 - 16.2 = 19.5
	if est.BodyFat != 19.5 {
		t.Errorf("body fat = %f, want 19.5", est.BodyFat)
	}

	// (100 - 19.5) * 0.45 = 36.225 → 36.2
	if est.MuscleMass != 36.2 {
		t.Errorf("muscle mass = %f, want 36.2", est.MuscleMass)
	}

	// No measurements, no WHR-derived fields
	if est.VisceralFat != nil {
		t.Error("visceral fat should be absent without measurements")
	}
	if est.BodyShape != "" {
		t.Errorf("body shape = %q, want empty", est.BodyShape)
	}
}

func TestEstimateComposition_FemaleOffset(t *testing.T) {
	p := profile.Profile{BMI: 24, Age: 30, Gender: profile.Female}

	est, err := EstimateComposition(p, nil)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}

	// 1.20*24 + 0.23*30 - 5.4 = 30.3
	if est.BodyFat != 30.3 {
		t.Errorf("body fat = %f, want 30.3", est.BodyFat)
	}
}

func TestEstimateComposition_BodyFatClamped(t *testing.T) {
	lean := profile.Profile{BMI: 15, Age: 18, Gender: profile.Male}
	est, err := EstimateComposition(lean, nil)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	// Raw value 1.20*15 + 0.23*18 - 16.2 = 5.94, above the floor
	if est.BodyFat != 5.9 {
		t.Errorf("body fat = %f, want 5.9", est.BodyFat)
	}

	veryLean := profile.Profile{BMI: 13, Age: 18, Gender: profile.Male}
	est, err = EstimateComposition(veryLean, nil)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	// Raw 3.54 clamps to the 5.0 floor
	if est.BodyFat != 5.0 {
		t.Errorf("body fat = %f, want the 5.0 floor", est.BodyFat)
	}

	heavy := profile.Profile{BMI: 45, Age: 70, Gender: profile.Female}
	est, err = EstimateComposition(heavy, nil)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	// Raw 64.7 clamps to the 50.0 ceiling
	if est.BodyFat != 50.0 {
		t.Errorf("body fat = %f, want the 50.0 ceiling", est.BodyFat)
	}
}

func TestEstimateComposition_IncompleteProfile(t *testing.T) {
	cases := []struct {
		name string
		p    profile.Profile
	}{
		{"missing age", profile.Profile{BMI: 24, Gender: profile.Male}},
		{"missing gender", profile.Profile{BMI: 24, Age: 30}},
		{"missing bmi", profile.Profile{Age: 30, Gender: profile.Female}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EstimateComposition(tc.p, nil)
			if !errors.Is(err, profile.ErrIncomplete) {
				t.Errorf("err = %v, want ErrIncomplete", err)
			}
		})
	}
}

func TestEstimateComposition_VisceralAndShapeFromWHR(t *testing.T) {
	p := profile.Profile{BMI: 24, Age: 30, Gender: profile.Female}
	m := &profile.Measurements{WHR: 0.9}

	est, err := EstimateComposition(p, m)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}

	// Female above the 0.85 breakpoint: 10 + (0.9-0.85)*25 = 11.25 → 11
	if est.VisceralFat == nil || *est.VisceralFat != 11 {
		t.Errorf("visceral fat = %v, want 11", est.VisceralFat)
	}
	if est.BodyShape != ShapeApple {
		t.Errorf("shape = %q, want apple", est.BodyShape)
	}
}

func TestVisceralLevel_MaleBreakpoint(t *testing.T) {
	// Above 1.0: 15 + (1.1-1.0)*20 = 17
	if got := visceralLevel(1.1, profile.Male); got != 17 {
		t.Errorf("level = %d, want 17", got)
	}
	// Below 1.0: 0.9*12 = 10.8 → 11
	if got := visceralLevel(0.9, profile.Male); got != 11 {
		t.Errorf("level = %d, want 11", got)
	}
}

func TestVisceralLevel_Clamped(t *testing.T) {
	if got := visceralLevel(0.01, profile.Female); got != 1 {
		t.Errorf("level = %d, want the floor 1", got)
	}
	if got := visceralLevel(2.5, profile.Male); got != 30 {
		t.Errorf("level = %d, want the ceiling 30", got)
	}
}

func TestClassifyShape(t *testing.T) {
	cases := []struct {
		whr  float64
		want Shape
	}{
		{0.90, ShapeApple},
		{0.86, ShapeApple},
		{0.85, ShapeRectangle},
		{0.80, ShapeRectangle},
		{0.75, ShapeRectangle},
		{0.70, ShapePear},
	}

	for _, tc := range cases {
		if got := classifyShape(tc.whr); got != tc.want {
			t.Errorf("classifyShape(%f) = %q, want %q", tc.whr, got, tc.want)
		}
	}
}

func TestMeasurementsRatio(t *testing.T) {
	m := &profile.Measurements{Waist: 80, Hip: 100}
	whr, ok := m.Ratio()
	if !ok || whr != 0.8 {
		t.Errorf("ratio = %f/%v, want 0.8/true", whr, ok)
	}

	explicit := &profile.Measurements{WHR: 0.95, Waist: 80, Hip: 100}
	whr, ok = explicit.Ratio()
	if !ok || whr != 0.95 {
		t.Errorf("ratio = %f/%v, explicit WHR should win", whr, ok)
	}

	var nilM *profile.Measurements
	if _, ok := nilM.Ratio(); ok {
		t.Error("nil measurements should report no ratio")
	}

	if _, ok := (&profile.Measurements{Waist: 80}).Ratio(); ok {
		t.Error("waist without hip should report no ratio")
	}
}
