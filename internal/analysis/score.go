package analysis

import "math"

// Penalty weights of the posture scoring model. Continuous penalties are
// capped per region; imbalance flags carry a fixed penalty on top of the
// continuous one for the same region. Near a threshold both apply at once.
// That double-counting matches the original scoring model and is kept.
const (
	shoulderSlopeDivisor = 5.0
	shoulderPenaltyCap   = 2.5
	hipSlopeDivisor      = 5.0
	hipPenaltyCap        = 2.0
	headTiltDivisor      = 10.0
	headPenaltyCap       = 1.5
	kneeValgusDivisor    = 20.0
	kneePenaltyCap       = 1.5
	flagPenalty          = 1.0
)

// Score bounds.
const (
	MinScore = 1.0
	MaxScore = 10.0
)

// Score computes the composite posture score for a set of metrics.
// The model starts at 10.0 and subtracts independent capped penalties for
// each measured metric; unmeasured metrics contribute nothing. The result
// is clamped to [1.0, 10.0] and rounded to one decimal.
func Score(m Metrics) float64 {
	score := MaxScore

	if m.Shoulder != nil {
		score -= math.Min(math.Abs(m.Shoulder.SlopeDegrees)/shoulderSlopeDivisor, shoulderPenaltyCap)
		if m.Shoulder.Imbalance {
			score -= flagPenalty
		}
	}

	if m.Hip != nil {
		score -= math.Min(math.Abs(m.Hip.SlopeDegrees)/hipSlopeDivisor, hipPenaltyCap)
		if m.Hip.Imbalance {
			score -= flagPenalty
		}
	}

	if m.Head != nil {
		score -= math.Min(math.Abs(m.Head.TiltDegrees)/headTiltDivisor, headPenaltyCap)
		if m.Head.ForwardHead {
			score -= flagPenalty
		}
	}

	if m.Knee != nil {
		score -= math.Min(m.Knee.ValgusIndicator/kneeValgusDivisor, kneePenaltyCap)
	}

	return clampScore(round1(score))
}

func clampScore(score float64) float64 {
	return math.Min(MaxScore, math.Max(MinScore, score))
}
