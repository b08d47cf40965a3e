package analysis

// Imbalance thresholds applied to raw geometric deltas. Flags fire only
// strictly above a threshold. Pixel thresholds are in source-image pixel
// units; the valgus threshold is on the 0-100 indicator scale.
const (
	// ShoulderImbalancePx is the |left.y - right.y| shoulder height delta
	// above which the shoulder imbalance flag fires.
	ShoulderImbalancePx = 10.0

	// HipImbalancePx is the hip height delta above which the hip
	// imbalance flag fires.
	HipImbalancePx = 8.0

	// ForwardHeadPx is the horizontal nose offset from the shoulder
	// midpoint above which the forward-head flag fires.
	ForwardHeadPx = 15.0

	// KneeValgusIndicator is the valgus indicator value above which the
	// knee valgus flag fires.
	KneeValgusIndicator = 15.0
)
