package types

type EyeState string

const (
	EyeStateOpen   EyeState = "OPEN"
	EyeStateClosed EyeState = "CLOSED"
	EyeStateUnsure EyeState = "UNSURE"
)

// FaceBox is the bounding box of the detected face in frame pixel
// coordinates.
type FaceBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (box FaceBox) CenterX() float64 {
	return float64(box.X) + float64(box.Width)/2.0
}

// FrameAnalysis is the per-frame result from the face-mesh service.
// FaceCount of 0 is a clean result, not an error.
type FrameAnalysis struct {
	FaceCount      int      `json:"face_count"`
	FaceBox        *FaceBox `json:"face_box"`
	FrameWidth     int      `json:"frame_width"`
	FrameHeight    int      `json:"frame_height"`
	Sharpness      float64  `json:"sharpness"`
	EyeAspectRatio *float64 `json:"ear"`
	EyeState       EyeState `json:"eye_state"`
}

type VisionServiceType interface {
	Classify(image *string) (*FrameAnalysis, error)
	HealthCheck() error
}
