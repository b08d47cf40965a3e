package analysis

// Combine merges the metrics of a front-view and a back-view analysis into
// one record. The front view takes precedence: the back view supplies the
// hip metric only when the front view failed to produce one. The combined
// score is the arithmetic mean of the two independently computed scores.
// Either argument may be nil; with a single view the result is a copy of
// that view, and with none the result is nil.
func Combine(front, back *Metrics) *Metrics {
	switch {
	case front == nil && back == nil:
		return nil
	case front == nil:
		combined := *back
		return &combined
	case back == nil:
		combined := *front
		return &combined
	}

	combined := *front
	if combined.Hip == nil {
		combined.Hip = back.Hip
	}
	combined.Score = clampScore(round1((front.Score + back.Score) / 2))
	return &combined
}
