package liveness

import (
	"math"
	"testing"

	"blinkgate.io/infrastructure/vision/types"
)

func TestAdmitFrame(t *testing.T) {
	tests := []struct {
		name     string
		analysis *types.FrameAnalysis
		want     RejectReason
	}{
		{
			name:     "no face",
			analysis: &types.FrameAnalysis{FaceCount: 0, FrameWidth: 640},
			want:     RejectNoFace,
		},
		{
			name: "multiple faces",
			analysis: &types.FrameAnalysis{
				FaceCount:  2,
				FaceBox:    &types.FaceBox{X: 220, Width: 200},
				FrameWidth: 640,
			},
			want: RejectMultipleFaces,
		},
		{
			name:     "face count without a box",
			analysis: &types.FrameAnalysis{FaceCount: 1, FrameWidth: 640},
			want:     RejectNoFace,
		},
		{
			name: "face too far",
			analysis: &types.FrameAnalysis{
				FaceCount:  1,
				FaceBox:    &types.FaceBox{X: 280, Width: 80},
				FrameWidth: 640,
				Sharpness:  150,
			},
			want: RejectTooFar,
		},
		{
			name: "face too close",
			analysis: &types.FrameAnalysis{
				FaceCount:  1,
				FaceBox:    &types.FaceBox{X: 60, Width: 520},
				FrameWidth: 640,
				Sharpness:  150,
			},
			want: RejectTooClose,
		},
		{
			name: "face off center",
			analysis: &types.FrameAnalysis{
				FaceCount:  1,
				FaceBox:    &types.FaceBox{X: 0, Width: 200},
				FrameWidth: 640,
				Sharpness:  150,
			},
			want: RejectNotCentered,
		},
		{
			name: "frame too blurry",
			analysis: &types.FrameAnalysis{
				FaceCount:  1,
				FaceBox:    &types.FaceBox{X: 220, Width: 200},
				FrameWidth: 640,
				Sharpness:  30,
			},
			want: RejectTooBlurry,
		},
		{
			name: "sharpness exactly at threshold",
			analysis: &types.FrameAnalysis{
				FaceCount:  1,
				FaceBox:    &types.FaceBox{X: 220, Width: 200},
				FrameWidth: 640,
				Sharpness:  MinFrameSharpness,
			},
			want: RejectNone,
		},
		{
			name: "acceptable frame",
			analysis: &types.FrameAnalysis{
				FaceCount:  1,
				FaceBox:    &types.FaceBox{X: 220, Width: 200},
				FrameWidth: 640,
				Sharpness:  150,
			},
			want: RejectNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdmitFrame(tt.analysis); got != tt.want {
				t.Errorf("AdmitFrame() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRejectReasonMessages(t *testing.T) {
	reasons := []RejectReason{
		RejectNoFace,
		RejectMultipleFaces,
		RejectTooFar,
		RejectTooClose,
		RejectNotCentered,
		RejectTooBlurry,
	}
	for _, reason := range reasons {
		if reason.Message() == "" {
			t.Errorf("reason %q has no user guidance", reason)
		}
	}
}

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name        string
		sharpness   float64
		faceCenterX float64
		frameWidth  int
		want        float64
	}{
		{
			name:        "perfectly centered",
			sharpness:   150,
			faceCenterX: 320,
			frameWidth:  640,
			want:        250,
		},
		{
			name:        "halfway off center",
			sharpness:   150,
			faceCenterX: 160,
			frameWidth:  640,
			want:        200,
		},
		{
			name:        "at the frame edge",
			sharpness:   150,
			faceCenterX: 0,
			frameWidth:  640,
			want:        150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QualityScore(tt.sharpness, tt.faceCenterX, tt.frameWidth)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("QualityScore() = %f, want %f", got, tt.want)
			}
		})
	}
}

// A sharper but badly placed frame must be able to lose to a softer
// centered one, otherwise centering guidance is pointless.
func TestQualityScoreBalancesSharpnessAndCentering(t *testing.T) {
	centered := QualityScore(100, 320, 640)
	sharpButOffCenter := QualityScore(140, 96, 640)
	if sharpButOffCenter >= centered {
		t.Errorf("off-center frame scored %f, centered frame %f", sharpButOffCenter, centered)
	}
}
