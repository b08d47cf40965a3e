package pose

import (
	"gocv.io/x/gocv"
)

// MockEstimator is a test implementation of the Estimator interface.
// It allows tests to control the estimation results.
type MockEstimator struct {
	frame *Frame
	queue []*Frame
	err   error
}

// NewMockEstimator creates a new MockEstimator instance.
func NewMockEstimator() *MockEstimator {
	return &MockEstimator{}
}

// SetFrame sets the frame that will be returned by every Estimate call.
func (m *MockEstimator) SetFrame(frame *Frame) {
	m.frame = frame
	m.queue = nil
}

// SetSequence sets a sequence of frames returned by successive Estimate
// calls, one per call. After the sequence is exhausted the last frame is
// returned again.
func (m *MockEstimator) SetSequence(frames ...*Frame) {
	m.queue = frames
	m.frame = nil
}

// SetError sets the error that will be returned by Estimate.
func (m *MockEstimator) SetError(err error) {
	m.err = err
}

// Estimate returns the pre-configured frame or error.
func (m *MockEstimator) Estimate(image *gocv.Mat) (*Frame, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.queue) > 0 {
		frame := m.queue[0]
		if len(m.queue) > 1 {
			m.queue = m.queue[1:]
		}
		return frame, nil
	}
	if m.frame != nil {
		return m.frame, nil
	}
	return &Frame{Width: 640, Height: 480}, nil
}

// Close is a no-op for the mock estimator.
func (m *MockEstimator) Close() error {
	return nil
}

// fullBody returns a filler landmark list covering every pose index so the
// fixture constructors only need to position the points that matter.
func fullBody() []RawLandmark {
	landmarks := make([]RawLandmark, NumLandmarks)
	for i := range landmarks {
		landmarks[i] = RawLandmark{X: 0.5, Y: 0.5, Visibility: 0.6}
	}
	return landmarks
}

// AlignedFrame returns a preset Frame representing a well-aligned standing
// pose seen from the front: level shoulders and hips, head centered over
// the shoulder midpoint, knees tracking over the ankles.
func AlignedFrame() *Frame {
	lm := fullBody()

	lm[IdxNose] = RawLandmark{X: 0.50, Y: 0.20, Visibility: 0.98}
	lm[IdxLeftEye] = RawLandmark{X: 0.48, Y: 0.18, Visibility: 0.97}
	lm[IdxRightEye] = RawLandmark{X: 0.52, Y: 0.18, Visibility: 0.97}
	lm[IdxLeftEar] = RawLandmark{X: 0.46, Y: 0.19, Visibility: 0.90}
	lm[IdxRightEar] = RawLandmark{X: 0.54, Y: 0.19, Visibility: 0.90}

	lm[IdxLeftShoulder] = RawLandmark{X: 0.38, Y: 0.30, Visibility: 0.99}
	lm[IdxRightShoulder] = RawLandmark{X: 0.62, Y: 0.30, Visibility: 0.99}
	lm[IdxLeftElbow] = RawLandmark{X: 0.34, Y: 0.42, Visibility: 0.95}
	lm[IdxRightElbow] = RawLandmark{X: 0.66, Y: 0.42, Visibility: 0.95}
	lm[IdxLeftWrist] = RawLandmark{X: 0.33, Y: 0.52, Visibility: 0.93}
	lm[IdxRightWrist] = RawLandmark{X: 0.67, Y: 0.52, Visibility: 0.93}

	lm[IdxLeftHip] = RawLandmark{X: 0.43, Y: 0.52, Visibility: 0.98}
	lm[IdxRightHip] = RawLandmark{X: 0.57, Y: 0.52, Visibility: 0.98}
	lm[IdxLeftKnee] = RawLandmark{X: 0.43, Y: 0.70, Visibility: 0.96}
	lm[IdxRightKnee] = RawLandmark{X: 0.57, Y: 0.70, Visibility: 0.96}
	lm[IdxLeftAnkle] = RawLandmark{X: 0.43, Y: 0.88, Visibility: 0.94}
	lm[IdxRightAnkle] = RawLandmark{X: 0.57, Y: 0.88, Visibility: 0.94}
	lm[IdxLeftHeel] = RawLandmark{X: 0.42, Y: 0.91, Visibility: 0.85}
	lm[IdxRightHeel] = RawLandmark{X: 0.58, Y: 0.91, Visibility: 0.85}
	lm[IdxLeftFoot] = RawLandmark{X: 0.44, Y: 0.93, Visibility: 0.85}
	lm[IdxRightFoot] = RawLandmark{X: 0.56, Y: 0.93, Visibility: 0.85}

	return &Frame{Landmarks: lm, Width: 1000, Height: 1000}
}

// ImbalancedFrame returns a preset Frame with a dropped right shoulder, a
// tilted pelvis, a laterally shifted head, and knees collapsing inward
// relative to the ankles. Every imbalance flag fires on this pose.
func ImbalancedFrame() *Frame {
	lm := fullBody()

	lm[IdxNose] = RawLandmark{X: 0.52, Y: 0.20, Visibility: 0.98}
	lm[IdxLeftEye] = RawLandmark{X: 0.50, Y: 0.18, Visibility: 0.97}
	lm[IdxRightEye] = RawLandmark{X: 0.54, Y: 0.18, Visibility: 0.97}

	lm[IdxLeftShoulder] = RawLandmark{X: 0.38, Y: 0.28, Visibility: 0.97}
	lm[IdxRightShoulder] = RawLandmark{X: 0.62, Y: 0.33, Visibility: 0.95}

	lm[IdxLeftHip] = RawLandmark{X: 0.44, Y: 0.52, Visibility: 0.96}
	lm[IdxRightHip] = RawLandmark{X: 0.56, Y: 0.50, Visibility: 0.94}

	lm[IdxLeftKnee] = RawLandmark{X: 0.47, Y: 0.70, Visibility: 0.92}
	lm[IdxRightKnee] = RawLandmark{X: 0.53, Y: 0.70, Visibility: 0.92}
	lm[IdxLeftAnkle] = RawLandmark{X: 0.43, Y: 0.88, Visibility: 0.90}
	lm[IdxRightAnkle] = RawLandmark{X: 0.57, Y: 0.88, Visibility: 0.90}

	return &Frame{Landmarks: lm, Width: 1000, Height: 1000}
}

// UpperBodyFrame returns a preset Frame where only the head and shoulders
// were detected, as happens with a cropped or seated photograph. Hip and
// knee metrics are unavailable for this pose.
func UpperBodyFrame() *Frame {
	lm := make([]RawLandmark, IdxRightWrist+1)
	for i := range lm {
		lm[i] = RawLandmark{X: 0.5, Y: 0.3, Visibility: 0.5}
	}

	lm[IdxNose] = RawLandmark{X: 0.50, Y: 0.18, Visibility: 0.97}
	lm[IdxLeftShoulder] = RawLandmark{X: 0.36, Y: 0.34, Visibility: 0.96}
	lm[IdxRightShoulder] = RawLandmark{X: 0.64, Y: 0.34, Visibility: 0.96}

	return &Frame{Landmarks: lm, Width: 1000, Height: 1000}
}
