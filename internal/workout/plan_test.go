package workout

import (
	"testing"

	"github.com/fitwave/fitwave/internal/analysis"
	"github.com/fitwave/fitwave/internal/profile"
)

func TestTierFor(t *testing.T) {
	cases := []struct {
		level float64
		want  Tier
	}{
		{1.2, TierBeginner},
		{1.375, TierBeginner},
		{1.4, TierIntermediate},
		{1.55, TierIntermediate},
		{1.725, TierAdvanced},
		{1.9, TierAdvanced},
		{0, TierBeginner},
	}

	for _, tc := range cases {
		if got := TierFor(tc.level); got != tc.want {
			t.Errorf("TierFor(%f) = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestGenerate_WeightLossTemplate(t *testing.T) {
	p := profile.Profile{Goal: profile.GoalLose, ActivityLevel: 1.2}

	plan := Generate(p, nil)

	if plan.Name != "Weight Loss Program" {
		t.Errorf("name = %q, want the weight loss template", plan.Name)
	}
	if plan.Type != TypeCardio {
		t.Errorf("type = %q, want cardio", plan.Type)
	}
	if plan.DurationMinutes != 45 {
		t.Errorf("duration = %d, want 45", plan.DurationMinutes)
	}
	if plan.Difficulty != TierBeginner {
		t.Errorf("difficulty = %q, want beginner", plan.Difficulty)
	}
	if len(plan.Exercises) != 5 {
		t.Errorf("got %d exercises, want 5", len(plan.Exercises))
	}
	if plan.CorrectiveWarmup != nil {
		t.Error("no corrective warmup expected without posture metrics")
	}
}

func TestGenerate_MuscleGainTemplate(t *testing.T) {
	p := profile.Profile{Goal: profile.GoalGain, ActivityLevel: 1.55}

	plan := Generate(p, nil)

	if plan.Name != "Muscle Building Program" {
		t.Errorf("name = %q, want the muscle building template", plan.Name)
	}
	if plan.Type != TypeStrength || plan.DurationMinutes != 60 {
		t.Errorf("got %s/%d min, want strength/60", plan.Type, plan.DurationMinutes)
	}
	if plan.Difficulty != TierIntermediate {
		t.Errorf("difficulty = %q, want intermediate", plan.Difficulty)
	}
	if plan.Exercises[0].Sets != 4 {
		t.Errorf("bench press sets = %d, want the template's 4", plan.Exercises[0].Sets)
	}
}

func TestGenerate_DefaultsToMaintenance(t *testing.T) {
	for _, goal := range []profile.Goal{profile.GoalMaintain, ""} {
		plan := Generate(profile.Profile{Goal: goal, ActivityLevel: 1.375}, nil)
		if plan.Name != "Fitness Maintenance Program" {
			t.Errorf("goal %q: name = %q, want the maintenance template", goal, plan.Name)
		}
		if plan.DurationMinutes != 40 {
			t.Errorf("goal %q: duration = %d, want 40", goal, plan.DurationMinutes)
		}
	}
}

func TestGenerate_AdvancedScalesSets(t *testing.T) {
	p := profile.Profile{Goal: profile.GoalGain, ActivityLevel: 1.9}

	plan := Generate(p, nil)

	// Template sets 4/4/3/3/3 each bumped by one
	wantSets := []int{5, 5, 4, 4, 4}
	for i, want := range wantSets {
		if plan.Exercises[i].Sets != want {
			t.Errorf("exercise %d sets = %d, want %d", i, plan.Exercises[i].Sets, want)
		}
	}
}

func TestGenerate_AdvancedLeavesTimedExercisesAlone(t *testing.T) {
	p := profile.Profile{Goal: profile.GoalLose, ActivityLevel: 1.9}

	plan := Generate(p, nil)

	cardio := plan.Exercises[len(plan.Exercises)-1]
	if cardio.Name != "Cardio intervals" {
		t.Fatalf("last exercise = %q, want the cardio block", cardio.Name)
	}
	if cardio.Sets != 0 {
		t.Errorf("cardio sets = %d, duration-only exercises must not gain sets", cardio.Sets)
	}
	if cardio.Duration != "15-20 min" {
		t.Errorf("cardio duration = %q, want 15-20 min", cardio.Duration)
	}
}

func TestGenerate_ScalingDoesNotLeakBetweenPlans(t *testing.T) {
	advanced := profile.Profile{Goal: profile.GoalGain, ActivityLevel: 1.9}
	Generate(advanced, nil)

	beginner := profile.Profile{Goal: profile.GoalGain, ActivityLevel: 1.2}
	plan := Generate(beginner, nil)

	if plan.Exercises[0].Sets != 4 {
		t.Errorf("sets = %d, an earlier advanced plan leaked into the template", plan.Exercises[0].Sets)
	}
}

func TestGenerate_CorrectiveWarmupForShoulder(t *testing.T) {
	p := profile.Profile{Goal: profile.GoalMaintain, ActivityLevel: 1.2}
	m := &analysis.Metrics{Shoulder: &analysis.ShoulderMetrics{Imbalance: true}}

	plan := Generate(p, m)

	if len(plan.CorrectiveWarmup) != 2 {
		t.Fatalf("got %d warmup exercises, want 2", len(plan.CorrectiveWarmup))
	}
	if plan.CorrectiveWarmup[0].Name != "Face Pull" {
		t.Errorf("first warmup = %q, want Face Pull", plan.CorrectiveWarmup[0].Name)
	}
	if plan.CorrectiveWarmup[1].Name != "Chest Stretch" {
		t.Errorf("second warmup = %q, want Chest Stretch", plan.CorrectiveWarmup[1].Name)
	}
}

func TestGenerate_CorrectiveWarmupForBothImbalances(t *testing.T) {
	p := profile.Profile{Goal: profile.GoalMaintain, ActivityLevel: 1.2}
	m := &analysis.Metrics{
		Shoulder: &analysis.ShoulderMetrics{Imbalance: true},
		Hip:      &analysis.HipMetrics{Imbalance: true},
	}

	plan := Generate(p, m)

	if len(plan.CorrectiveWarmup) != 4 {
		t.Fatalf("got %d warmup exercises, want 4", len(plan.CorrectiveWarmup))
	}
	if plan.CorrectiveWarmup[2].Name != "Side Plank" {
		t.Errorf("third warmup = %q, want Side Plank", plan.CorrectiveWarmup[2].Name)
	}
}

func TestGenerate_NoWarmupWithoutFlags(t *testing.T) {
	p := profile.Profile{Goal: profile.GoalMaintain, ActivityLevel: 1.2}
	m := &analysis.Metrics{Shoulder: &analysis.ShoulderMetrics{SlopeDegrees: 2}}

	plan := Generate(p, m)

	if len(plan.CorrectiveWarmup) != 0 {
		t.Errorf("got %d warmup exercises, want none without imbalance flags", len(plan.CorrectiveWarmup))
	}
}
