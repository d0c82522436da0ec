package liveness

import (
	"math"

	"blinkgate.io/infrastructure/vision/types"
)

// Frame gate thresholds. Accept/reject is a pure function of the
// frame analysis and these constants.
const (
	FaceWidthMinRatio   = 0.18
	FaceWidthMaxRatio   = 0.75
	FaceCenterTolerance = 0.15
	MinFrameSharpness   = 60.0
)

type RejectReason string

const (
	RejectNone          RejectReason = ""
	RejectNoFace        RejectReason = "no_face"
	RejectMultipleFaces RejectReason = "multiple_faces"
	RejectTooFar        RejectReason = "too_far"
	RejectTooClose      RejectReason = "too_close"
	RejectNotCentered   RejectReason = "not_centered"
	RejectTooBlurry     RejectReason = "too_blurry"
)

var rejectMessages = map[RejectReason]string{
	RejectNoFace:        "No face detected. Look at the camera with your full face visible.",
	RejectMultipleFaces: "Multiple faces detected. Keep one face in frame.",
	RejectTooFar:        "Move a little closer to the camera.",
	RejectTooClose:      "Move a little away from the camera.",
	RejectNotCentered:   "Center your face in the frame.",
	RejectTooBlurry:     "Hold steady for a clearer frame.",
}

func (reason RejectReason) Message() string {
	return rejectMessages[reason]
}

// AdmitFrame decides whether an analyzed frame may influence session
// state. It has no side effects.
func AdmitFrame(analysis *types.FrameAnalysis) RejectReason {
	if analysis.FaceCount == 0 {
		return RejectNoFace
	}
	if analysis.FaceCount > 1 {
		return RejectMultipleFaces
	}
	if analysis.FaceBox == nil || analysis.FrameWidth <= 0 {
		return RejectNoFace
	}

	frameWidth := float64(analysis.FrameWidth)
	widthRatio := float64(analysis.FaceBox.Width) / frameWidth
	if widthRatio < FaceWidthMinRatio {
		return RejectTooFar
	}
	if widthRatio > FaceWidthMaxRatio {
		return RejectTooClose
	}

	centerOffsetRatio := math.Abs(analysis.FaceBox.CenterX()-frameWidth/2.0) / frameWidth
	if centerOffsetRatio > FaceCenterTolerance {
		return RejectNotCentered
	}

	if analysis.Sharpness < MinFrameSharpness {
		return RejectTooBlurry
	}

	return RejectNone
}

// QualityScore weighs sharpness against face centering. The center
// ratio is scaled to 0..100 so it is comparable to sharpness
// magnitudes.
func QualityScore(sharpness float64, faceCenterX float64, frameWidth int) float64 {
	halfWidth := float64(frameWidth) / 2.0
	centerRatio := 1.0 - math.Abs(faceCenterX-halfWidth)/halfWidth
	return sharpness + centerRatio*100.0
}
