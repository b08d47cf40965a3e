package recommend

import (
	"fmt"
	"math"

	"github.com/fitwave/fitwave/internal/analysis"
)

// ForPosture evaluates the posture rule table against a metrics record and
// returns the fired recommendations in rule-table order: shoulder
// imbalance, forward head, hip imbalance, knee valgus. The output order is
// stable so a caller truncating the list gets a deterministic prefix.
// When no rule fires, exactly one generic in-range recommendation is
// returned.
func ForPosture(m *analysis.Metrics) []Recommendation {
	var recs []Recommendation

	if m != nil {
		if m.Shoulder != nil && m.Shoulder.Imbalance {
			recs = append(recs, shoulderRule(m.Shoulder))
		}
		if m.Head != nil && m.Head.ForwardHead {
			recs = append(recs, forwardHeadRule())
		}
		if m.Hip != nil && m.Hip.Imbalance {
			recs = append(recs, hipRule(m.Hip))
		}
		if m.Knee != nil && m.Knee.Valgus {
			recs = append(recs, kneeRule(m.Knee))
		}
	}

	if len(recs) == 0 {
		recs = append(recs, Fallback())
	}

	return recs
}

func shoulderRule(s *analysis.ShoulderMetrics) Recommendation {
	return Recommendation{
		Category:    CategoryPosture,
		Priority:    PriorityHigh,
		Title:       "Shoulder imbalance correction",
		Description: fmt.Sprintf("Detected shoulder tilt of %.1f°", math.Abs(s.SlopeDegrees)),
		ActionSteps: []string{
			"Perform face pulls: 3 sets of 15 repetitions",
			"Stretch the chest muscles 2-3 times daily for 30 seconds",
			"Strengthen the rear delts and rhomboids",
			"Monitor shoulder position throughout the day",
		},
	}
}

func forwardHeadRule() Recommendation {
	return Recommendation{
		Category:    CategoryPosture,
		Priority:    PriorityMedium,
		Title:       "Forward head posture",
		Description: "The head sits forward of the shoulder midline",
		ActionSteps: []string{
			"Do chin tucks: 3 sets of 10 repetitions",
			"Strengthen the deep neck flexors",
			"Check monitor height and workspace ergonomics",
		},
	}
}

func hipRule(h *analysis.HipMetrics) Recommendation {
	return Recommendation{
		Category:    CategoryPosture,
		Priority:    PriorityMedium,
		Title:       "Pelvic position correction",
		Description: fmt.Sprintf("Detected pelvic imbalance of %.1f°", math.Abs(h.SlopeDegrees)),
		ActionSteps: []string{
			"Side plank on each side: 3 sets of 30-60 seconds",
			"Strengthen the gluteus medius",
			"Stretch the quadratus lumborum",
			"Check workspace ergonomics",
		},
	}
}

func kneeRule(k *analysis.KneeMetrics) Recommendation {
	return Recommendation{
		Category:    CategoryExercise,
		Priority:    PriorityHigh,
		Title:       "Knee valgus correction",
		Description: fmt.Sprintf("Detected tendency for inward knee collapse (indicator %.1f)", k.ValgusIndicator),
		ActionSteps: []string{
			"Side-lying hip abductions: 3 sets of 15 repetitions",
			"Squats with controlled knee tracking",
			"Strengthen the outer thigh muscles",
			"Stretch the IT band",
		},
	}
}
