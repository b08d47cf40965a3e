// Package analysis derives posture metrics and a composite posture score
// from named body keypoints.
package analysis

import (
	"math"

	"github.com/fitwave/fitwave/internal/pose"
)

// Metrics is the result of one posture analysis pass over one image.
// Each sub-metric pointer is nil when the landmarks it needs were missing
// from the keypoint set: an absent metric means "unmeasured", never zero.
type Metrics struct {
	Shoulder *ShoulderMetrics `json:"shoulder,omitempty"`
	Head     *HeadMetrics     `json:"head,omitempty"`
	Hip      *HipMetrics      `json:"hip,omitempty"`
	Knee     *KneeMetrics     `json:"knee,omitempty"`

	// Score is the composite posture score in [1.0, 10.0].
	Score float64 `json:"posture_score"`
}

// ShoulderMetrics describes shoulder alignment.
type ShoulderMetrics struct {
	SlopeDegrees float64 `json:"slope_degrees"`
	HeightDiff   float64 `json:"height_difference"`
	Imbalance    bool    `json:"has_imbalance"`
	Confidence   float64 `json:"confidence"`
}

// HeadMetrics describes head position relative to the shoulder midpoint.
type HeadMetrics struct {
	TiltDegrees float64 `json:"tilt_degrees"`
	OffsetX     float64 `json:"offset_x"`
	OffsetY     float64 `json:"offset_y"`
	ForwardHead bool    `json:"forward_head_posture"`
	Confidence  float64 `json:"confidence"`
}

// HipMetrics describes pelvic alignment.
type HipMetrics struct {
	SlopeDegrees float64 `json:"slope_degrees"`
	HeightDiff   float64 `json:"height_difference"`
	Imbalance    bool    `json:"has_imbalance"`
	Confidence   float64 `json:"confidence"`
}

// KneeMetrics describes knee tracking relative to ankles and hips.
// The valgus indicator is a 1-D horizontal-distance proxy for inward knee
// collapse, not a true 3-D joint angle; it is an approximation.
type KneeMetrics struct {
	ValgusIndicator float64 `json:"valgus_indicator"`
	Valgus          bool    `json:"has_valgus"`
	KneeDistance    float64 `json:"knee_distance"`
	AnkleDistance   float64 `json:"ankle_distance"`
	Confidence      float64 `json:"confidence"`
}

// Analyze computes all posture metrics available from the given keypoints.
// Sub-analyses whose required points are absent are left nil. The composite
// score reflects only the metrics that were measured.
func Analyze(keypoints pose.Keypoints) Metrics {
	m := Metrics{
		Shoulder: analyzeShoulders(keypoints),
		Head:     analyzeHead(keypoints),
		Hip:      analyzeHips(keypoints),
		Knee:     analyzeKnees(keypoints),
	}
	m.Score = Score(m)
	return m
}

// analyzeShoulders measures shoulder slope and height imbalance.
func analyzeShoulders(kp pose.Keypoints) *ShoulderMetrics {
	left, okL := kp.Get(pose.LeftShoulder)
	right, okR := kp.Get(pose.RightShoulder)
	if !okL || !okR {
		return nil
	}

	heightDiff := left.Y - right.Y
	slope := slopeDegrees(right.X-left.X, right.Y-left.Y)

	return &ShoulderMetrics{
		SlopeDegrees: round2(slope),
		HeightDiff:   round1(heightDiff),
		Imbalance:    math.Abs(heightDiff) > ShoulderImbalancePx,
		Confidence:   math.Min(left.Visibility, right.Visibility),
	}
}

// analyzeHead measures head offset from the shoulder midpoint and lateral tilt.
func analyzeHead(kp pose.Keypoints) *HeadMetrics {
	if !kp.Has(pose.Nose, pose.LeftShoulder, pose.RightShoulder) {
		return nil
	}

	nose := kp[pose.Nose]
	left := kp[pose.LeftShoulder]
	right := kp[pose.RightShoulder]

	centerX := (left.X + right.X) / 2
	centerY := (left.Y + right.Y) / 2

	offsetX := nose.X - centerX
	offsetY := nose.Y - centerY

	// Tilt is 0 by convention when the vertical offset vanishes; this
	// avoids atan2 snapping to ±90° for a degenerate offset.
	var tilt float64
	if offsetY != 0 {
		tilt = degrees(math.Atan2(offsetX, math.Abs(offsetY)))
	}

	confidence := math.Min(nose.Visibility, math.Min(left.Visibility, right.Visibility))

	return &HeadMetrics{
		TiltDegrees: round2(tilt),
		OffsetX:     round1(offsetX),
		OffsetY:     round1(offsetY),
		ForwardHead: math.Abs(offsetX) > ForwardHeadPx,
		Confidence:  confidence,
	}
}

// analyzeHips measures pelvic slope and height imbalance.
func analyzeHips(kp pose.Keypoints) *HipMetrics {
	left, okL := kp.Get(pose.LeftHip)
	right, okR := kp.Get(pose.RightHip)
	if !okL || !okR {
		return nil
	}

	heightDiff := left.Y - right.Y
	slope := slopeDegrees(right.X-left.X, right.Y-left.Y)

	return &HipMetrics{
		SlopeDegrees: round2(slope),
		HeightDiff:   round1(heightDiff),
		Imbalance:    math.Abs(heightDiff) > HipImbalancePx,
		Confidence:   math.Min(left.Visibility, right.Visibility),
	}
}

// analyzeKnees computes the valgus indicator from inter-knee, inter-ankle
// and inter-hip horizontal distances.
func analyzeKnees(kp pose.Keypoints) *KneeMetrics {
	if !kp.Has(pose.LeftKnee, pose.RightKnee, pose.LeftAnkle, pose.RightAnkle, pose.LeftHip, pose.RightHip) {
		return nil
	}

	kneeDist := math.Abs(kp[pose.LeftKnee].X - kp[pose.RightKnee].X)
	ankleDist := math.Abs(kp[pose.LeftAnkle].X - kp[pose.RightAnkle].X)
	hipDist := math.Abs(kp[pose.LeftHip].X - kp[pose.RightHip].X)

	var indicator float64
	if ankleDist > 0 && hipDist > 0 {
		kneeRatio := kneeDist / ankleDist
		if kneeRatio < 1 {
			indicator = (1 - kneeRatio) * 100
		}
	}
	indicator = math.Max(0, indicator)

	confidence := math.Min(kp[pose.LeftKnee].Visibility, kp[pose.RightKnee].Visibility)

	return &KneeMetrics{
		ValgusIndicator: round2(indicator),
		Valgus:          indicator > KneeValgusIndicator,
		KneeDistance:    round1(kneeDist),
		AnkleDistance:   round1(ankleDist),
		Confidence:      confidence,
	}
}

// slopeDegrees returns the angle of the segment (dx, dy) relative to
// horizontal. The angle is 0 by convention when dx is 0: a vertical pair
// of paired landmarks is a degenerate detection and atan2(dy, 0) would
// report ±90° for it.
func slopeDegrees(dx, dy float64) float64 {
	if dx == 0 {
		return 0
	}
	return degrees(math.Atan2(dy, dx))
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
