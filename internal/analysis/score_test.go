package analysis

import "testing"

func TestScore_NoMetricsIsPerfect(t *testing.T) {
	if got := Score(Metrics{}); got != 10.0 {
		t.Errorf("score = %f, want 10.0 when nothing was measured", got)
	}
}

func TestScore_ShoulderSlopeOnly(t *testing.T) {
	m := Metrics{Shoulder: &ShoulderMetrics{SlopeDegrees: 10}}

	// 10/5 = 2.0 below the 2.5 cap, no flag
	if got := Score(m); got != 8.0 {
		t.Errorf("score = %f, want 8.0", got)
	}
}

func TestScore_ShoulderSlopeWithImbalance(t *testing.T) {
	m := Metrics{Shoulder: &ShoulderMetrics{SlopeDegrees: 10, Imbalance: true}}

	// Continuous penalty 2.0 plus the flag penalty 1.0
	if got := Score(m); got != 7.0 {
		t.Errorf("score = %f, want 7.0", got)
	}
}

func TestScore_NegativeSlopePenalizedByMagnitude(t *testing.T) {
	positive := Score(Metrics{Shoulder: &ShoulderMetrics{SlopeDegrees: 10}})
	negative := Score(Metrics{Shoulder: &ShoulderMetrics{SlopeDegrees: -10}})

	if positive != negative {
		t.Errorf("slope sign changed the score: %f vs %f", positive, negative)
	}
}

func TestScore_ContinuousPenaltiesAreCapped(t *testing.T) {
	m := Metrics{
		Shoulder: &ShoulderMetrics{SlopeDegrees: 90},
		Hip:      &HipMetrics{SlopeDegrees: 90},
		Head:     &HeadMetrics{TiltDegrees: 89},
		Knee:     &KneeMetrics{ValgusIndicator: 95},
	}

	// Caps: 2.5 + 2.0 + 1.5 + 1.5 = 7.5 → 2.5
	if got := Score(m); got != 2.5 {
		t.Errorf("score = %f, want 2.5 with all continuous penalties capped", got)
	}
}

func TestScore_ClampedAtFloor(t *testing.T) {
	m := Metrics{
		Shoulder: &ShoulderMetrics{SlopeDegrees: 90, Imbalance: true},
		Hip:      &HipMetrics{SlopeDegrees: 90, Imbalance: true},
		Head:     &HeadMetrics{TiltDegrees: 89, ForwardHead: true},
		Knee:     &KneeMetrics{ValgusIndicator: 95},
	}

	// Raw total would be 10 - 10.5 = -0.5
	if got := Score(m); got != 1.0 {
		t.Errorf("score = %f, want the 1.0 floor", got)
	}
}

func TestScore_HipCapIsTighterThanShoulderCap(t *testing.T) {
	shoulder := Score(Metrics{Shoulder: &ShoulderMetrics{SlopeDegrees: 90}})
	hip := Score(Metrics{Hip: &HipMetrics{SlopeDegrees: 90}})

	if shoulder != 7.5 {
		t.Errorf("shoulder-only score = %f, want 7.5", shoulder)
	}
	if hip != 8.0 {
		t.Errorf("hip-only score = %f, want 8.0", hip)
	}
}

func TestScore_KneeHasNoFlagPenalty(t *testing.T) {
	without := Score(Metrics{Knee: &KneeMetrics{ValgusIndicator: 10}})
	with := Score(Metrics{Knee: &KneeMetrics{ValgusIndicator: 10, Valgus: true}})

	// The valgus flag drives recommendations, not the score
	if without != with {
		t.Errorf("valgus flag changed the score: %f vs %f", without, with)
	}
}

func TestScore_RoundedToOneDecimal(t *testing.T) {
	// 10 - 2.86/5 = 9.428 → 9.4
	m := Metrics{Shoulder: &ShoulderMetrics{SlopeDegrees: 2.86}}
	if got := Score(m); got != 9.4 {
		t.Errorf("score = %f, want 9.4", got)
	}
}
