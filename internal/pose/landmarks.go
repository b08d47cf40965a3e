// Package pose provides pose estimation interfaces and landmark types for posture analysis.
package pose

// Body landmark indices following the MediaPipe Pose convention.
// See: https://developers.google.com/mediapipe/solutions/vision/pose_landmarker
const (
	IdxNose          = 0
	IdxLeftEye       = 1
	IdxRightEye      = 2
	IdxLeftEar       = 7
	IdxRightEar      = 8
	IdxLeftShoulder  = 11
	IdxRightShoulder = 12
	IdxLeftElbow     = 13
	IdxRightElbow    = 14
	IdxLeftWrist     = 15
	IdxRightWrist    = 16
	IdxLeftHip       = 23
	IdxRightHip      = 24
	IdxLeftKnee      = 25
	IdxRightKnee     = 26
	IdxLeftAnkle     = 27
	IdxRightAnkle    = 28
	IdxLeftHeel      = 29
	IdxRightHeel     = 30
	IdxLeftFoot      = 31
	IdxRightFoot     = 32
	NumLandmarks     = 33
)

// Name identifies an anatomical point in the posture vocabulary.
type Name string

// Anatomical vocabulary used by the metrics calculators.
const (
	Nose          Name = "nose"
	LeftEye       Name = "left_eye"
	RightEye      Name = "right_eye"
	LeftEar       Name = "left_ear"
	RightEar      Name = "right_ear"
	LeftShoulder  Name = "left_shoulder"
	RightShoulder Name = "right_shoulder"
	LeftElbow     Name = "left_elbow"
	RightElbow    Name = "right_elbow"
	LeftWrist     Name = "left_wrist"
	RightWrist    Name = "right_wrist"
	LeftHip       Name = "left_hip"
	RightHip      Name = "right_hip"
	LeftKnee      Name = "left_knee"
	RightKnee     Name = "right_knee"
	LeftAnkle     Name = "left_ankle"
	RightAnkle    Name = "right_ankle"
	LeftHeel      Name = "left_heel"
	RightHeel     Name = "right_heel"
	LeftFoot      Name = "left_foot"
	RightFoot     Name = "right_foot"
)

// nameIndices maps each vocabulary name to its MediaPipe Pose index.
var nameIndices = map[Name]int{
	Nose:          IdxNose,
	LeftEye:       IdxLeftEye,
	RightEye:      IdxRightEye,
	LeftEar:       IdxLeftEar,
	RightEar:      IdxRightEar,
	LeftShoulder:  IdxLeftShoulder,
	RightShoulder: IdxRightShoulder,
	LeftElbow:     IdxLeftElbow,
	RightElbow:    IdxRightElbow,
	LeftWrist:     IdxLeftWrist,
	RightWrist:    IdxRightWrist,
	LeftHip:       IdxLeftHip,
	RightHip:      IdxRightHip,
	LeftKnee:      IdxLeftKnee,
	RightKnee:     IdxRightKnee,
	LeftAnkle:     IdxLeftAnkle,
	RightAnkle:    IdxRightAnkle,
	LeftHeel:      IdxLeftHeel,
	RightHeel:     IdxRightHeel,
	LeftFoot:      IdxLeftFoot,
	RightFoot:     IdxRightFoot,
}

// RawLandmark is a single point as produced by the pose estimator:
// coordinates normalized to [0,1], estimator depth z, and a visibility
// score in [0,1].
type RawLandmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// Frame is one estimator result for one image: the ordered landmark list
// plus the source image dimensions in pixels. An empty Landmarks slice
// means no pose was detected at all, which is distinct from a pose with
// some points missing.
type Frame struct {
	Landmarks []RawLandmark `json:"landmarks"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
}

// Detected reports whether the frame contains any pose at all.
func (f *Frame) Detected() bool {
	return f != nil && len(f.Landmarks) > 0
}

// Landmark is a named anatomical point in pixel space with the original
// normalized coordinates and the estimator's visibility score preserved.
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
	XNorm      float64 `json:"x_norm"`
	YNorm      float64 `json:"y_norm"`
}

// Keypoints maps vocabulary names to landmarks for one analyzed image.
// Names whose landmark was not produced by the estimator are absent,
// not zeroed.
type Keypoints map[Name]Landmark

// Get returns the landmark for a name and whether it is present.
func (k Keypoints) Get(name Name) (Landmark, bool) {
	lm, ok := k[name]
	return lm, ok
}

// Has reports whether every given name is present.
func (k Keypoints) Has(names ...Name) bool {
	for _, name := range names {
		if _, ok := k[name]; !ok {
			return false
		}
	}
	return true
}

// ExtractKeypoints maps an ordered raw landmark list onto the anatomical
// vocabulary and converts the normalized coordinates into pixel space
// using the source image dimensions. Names whose index exceeds the raw
// list are silently omitted; downstream metrics treat them as unavailable.
func ExtractKeypoints(frame *Frame) Keypoints {
	keypoints := make(Keypoints)
	if frame == nil {
		return keypoints
	}

	w := float64(frame.Width)
	h := float64(frame.Height)

	for name, idx := range nameIndices {
		if idx >= len(frame.Landmarks) {
			continue
		}
		raw := frame.Landmarks[idx]
		keypoints[name] = Landmark{
			X:          raw.X * w,
			Y:          raw.Y * h,
			Z:          raw.Z,
			Visibility: raw.Visibility,
			XNorm:      raw.X,
			YNorm:      raw.Y,
		}
	}

	return keypoints
}
