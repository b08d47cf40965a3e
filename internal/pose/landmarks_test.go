package pose

import (
	"math"
	"testing"
)

func TestExtractKeypoints_PixelConversion(t *testing.T) {
	frame := AlignedFrame()

	keypoints := ExtractKeypoints(frame)

	nose, ok := keypoints.Get(Nose)
	if !ok {
		t.Fatal("expected nose keypoint to be present")
	}

	// Normalized (0.50, 0.20) on a 1000x1000 image maps to (500, 200)
	if nose.X != 500 || nose.Y != 200 {
		t.Errorf("nose pixel position = (%f, %f), want (500, 200)", nose.X, nose.Y)
	}

	// Normalized coordinates are preserved alongside pixel space
	if nose.XNorm != 0.50 || nose.YNorm != 0.20 {
		t.Errorf("nose normalized position = (%f, %f), want (0.50, 0.20)", nose.XNorm, nose.YNorm)
	}

	if nose.Visibility != 0.98 {
		t.Errorf("nose visibility = %f, want 0.98", nose.Visibility)
	}
}

func TestExtractKeypoints_FullVocabulary(t *testing.T) {
	keypoints := ExtractKeypoints(AlignedFrame())

	// A full-body frame covers every name in the vocabulary
	names := []Name{
		Nose, LeftEye, RightEye, LeftEar, RightEar,
		LeftShoulder, RightShoulder, LeftElbow, RightElbow,
		LeftWrist, RightWrist, LeftHip, RightHip,
		LeftKnee, RightKnee, LeftAnkle, RightAnkle,
		LeftHeel, RightHeel, LeftFoot, RightFoot,
	}

	for _, name := range names {
		if _, ok := keypoints.Get(name); !ok {
			t.Errorf("expected keypoint %q to be present", name)
		}
	}
}

func TestExtractKeypoints_OmitsOutOfRangeIndices(t *testing.T) {
	// A truncated landmark list covering only head and shoulders
	frame := UpperBodyFrame()

	keypoints := ExtractKeypoints(frame)

	if !keypoints.Has(Nose, LeftShoulder, RightShoulder) {
		t.Fatal("expected head and shoulder keypoints to be present")
	}

	// Hips, knees and below are beyond the supplied list and must be
	// silently omitted, not zeroed
	for _, name := range []Name{LeftHip, RightHip, LeftKnee, RightKnee, LeftAnkle, RightAnkle} {
		if _, ok := keypoints.Get(name); ok {
			t.Errorf("keypoint %q should be omitted for a truncated landmark list", name)
		}
	}
}

func TestExtractKeypoints_EmptyFrame(t *testing.T) {
	keypoints := ExtractKeypoints(&Frame{Width: 640, Height: 480})

	if len(keypoints) != 0 {
		t.Errorf("expected no keypoints for an empty frame, got %d", len(keypoints))
	}
}

func TestExtractKeypoints_NilFrame(t *testing.T) {
	keypoints := ExtractKeypoints(nil)

	if len(keypoints) != 0 {
		t.Errorf("expected no keypoints for a nil frame, got %d", len(keypoints))
	}
}

func TestFrame_Detected(t *testing.T) {
	if (&Frame{Width: 640, Height: 480}).Detected() {
		t.Error("frame without landmarks should not report a detection")
	}

	if !AlignedFrame().Detected() {
		t.Error("frame with landmarks should report a detection")
	}

	var nilFrame *Frame
	if nilFrame.Detected() {
		t.Error("nil frame should not report a detection")
	}
}

func TestKeypoints_Has(t *testing.T) {
	keypoints := ExtractKeypoints(UpperBodyFrame())

	if !keypoints.Has(Nose) {
		t.Error("Has(Nose) = false, want true")
	}

	if keypoints.Has(Nose, LeftAnkle) {
		t.Error("Has should be false when any requested name is missing")
	}
}

func TestAlignedFrame_IsLevel(t *testing.T) {
	keypoints := ExtractKeypoints(AlignedFrame())

	left := keypoints[LeftShoulder]
	right := keypoints[RightShoulder]

	if math.Abs(left.Y-right.Y) > 1e-9 {
		t.Errorf("aligned fixture shoulders differ in height: %f vs %f", left.Y, right.Y)
	}
}
