package liveness

import (
	"fmt"
	"strings"
	"time"

	"blinkgate.io/application/utils"
	ftypes "blinkgate.io/infrastructure/file_upload/types"
	"blinkgate.io/infrastructure/vision/types"
)

// Storage areas, one per eye state. Artifact names embed the identity
// and a millisecond timestamp so concurrent sessions never collide.
const (
	OpenEyeArea   = "open_eye"
	ClosedEyeArea = "closed_eye"
)

// CaptureArbiter owns stored-artifact identity: it is the only place
// that writes or deletes capture artifacts, and it keeps at most one
// live artifact per (session, eye state). The old artifact is removed
// before the new locator is recorded, so a fault mid-replacement
// leaves at worst a missing capture, never two.
type CaptureArbiter struct {
	Sink ftypes.FileUploaderType

	now func() time.Time
}

func NewCaptureArbiter(sink ftypes.FileUploaderType) *CaptureArbiter {
	return &CaptureArbiter{
		Sink: sink,
		now:  time.Now,
	}
}

// Consider replaces the best-known capture for the frame's eye state
// when the new score strictly improves on it. Ties do not replace.
func (arbiter *CaptureArbiter) Consider(session *LivenessSession, eyeState types.EyeState, score float64, frame []byte, identity string) (bool, error) {
	var bucket *EyeCapture
	var area string
	switch eyeState {
	case types.EyeStateOpen:
		bucket = &session.OpenEye
		area = OpenEyeArea
	case types.EyeStateClosed:
		bucket = &session.ClosedEye
		area = ClosedEyeArea
	default:
		return false, nil
	}

	if score <= bucket.BestScore {
		return false, nil
	}

	if bucket.StorageLocator != "" {
		if err := arbiter.Sink.DeleteFile(bucket.StorageLocator); err != nil {
			return false, fmt.Errorf("could not remove previous %s capture: %w", strings.ToLower(string(eyeState)), err)
		}
	}

	fileName := fmt.Sprintf("%s/%s_%s_%d.jpg", area, utils.SanitizeFileName(identity), strings.ToLower(string(eyeState)), arbiter.now().UnixMilli())
	locator, err := arbiter.Sink.UploadFile(frame, fileName)
	if err != nil {
		bucket.StorageLocator = ""
		bucket.Captured = false
		bucket.BestScore = initialScore
		return false, fmt.Errorf("could not store %s capture: %w", strings.ToLower(string(eyeState)), err)
	}

	bucket.StorageLocator = *locator
	bucket.BestScore = score
	bucket.Captured = true
	return true, nil
}
