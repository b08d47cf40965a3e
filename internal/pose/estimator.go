package pose

import "gocv.io/x/gocv"

// Estimator defines the interface for pose estimation implementations.
type Estimator interface {
	// Estimate analyzes an image and returns the detected body landmarks.
	// A frame with an empty landmark list means no pose was detected.
	Estimate(image *gocv.Mat) (*Frame, error)

	// Close releases any resources held by the estimator.
	Close() error
}

// Config holds configuration options for pose estimation.
type Config struct {
	// ModelComplexity selects the MediaPipe pose model (0-2, higher is
	// more accurate and slower).
	ModelComplexity int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		ModelComplexity: 2,
		MinConfidence:   0.7,
		MinTrackingConf: 0.5,
	}
}
