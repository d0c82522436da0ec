package liveness

import (
	"fmt"
	"strings"
	"time"

	"blinkgate.io/infrastructure/vision/types"
)

// initialScore sits below any achievable quality score so the first
// accepted frame always wins its bucket.
const initialScore = -1.0

// SessionKey derives the store key for one liveness attempt. Identity
// is case-normalized; the token is opaque and used as-is.
func SessionKey(identity string, token string) string {
	return fmt.Sprintf("%s::%s", strings.ToLower(identity), token)
}

// EyeCapture tracks the best stored frame for one eye state.
// Captured is true iff StorageLocator is non-empty and BestScore was
// set by at least one accepted frame.
type EyeCapture struct {
	Captured       bool
	BestScore      float64
	StorageLocator string
}

// LivenessSession is one in-progress blink attempt. The three Saw
// booleans are the gesture state machine: all false is AWAITING_OPEN,
// and each transition below flips exactly one of them.
type LivenessSession struct {
	Key       string
	StartedAt time.Time

	OpenEye   EyeCapture
	ClosedEye EyeCapture

	SawOpenBeforeClose  bool
	SawClosedAfterOpen  bool
	SawReopenAfterClose bool
}

func NewLivenessSession(key string, now time.Time) *LivenessSession {
	return &LivenessSession{
		Key:       key,
		StartedAt: now,
		OpenEye:   EyeCapture{BestScore: initialScore},
		ClosedEye: EyeCapture{BestScore: initialScore},
	}
}

func (session *LivenessSession) HasExpired(now time.Time, timeout time.Duration) bool {
	return now.Sub(session.StartedAt) > timeout
}

// RecordEyeState advances the blink sequence for a gate-accepted
// frame. A CLOSED frame before any OPEN cannot start the sequence and
// is ignored. An OPEN frame after a close counts as the reopen. The
// transitions are idempotent.
func (session *LivenessSession) RecordEyeState(eyeState types.EyeState) {
	switch eyeState {
	case types.EyeStateOpen:
		if !session.SawOpenBeforeClose {
			session.SawOpenBeforeClose = true
		} else if session.SawClosedAfterOpen {
			session.SawReopenAfterClose = true
		}
	case types.EyeStateClosed:
		if session.SawOpenBeforeClose {
			session.SawClosedAfterOpen = true
		}
	}
}

// Complete reports the terminal success condition. Both captures and
// all three gesture stages must hold simultaneously; captures taken
// out of gesture order do not verify.
func (session *LivenessSession) Complete() bool {
	return session.OpenEye.Captured &&
		session.ClosedEye.Captured &&
		session.SawOpenBeforeClose &&
		session.SawClosedAfterOpen &&
		session.SawReopenAfterClose
}

func (session *LivenessSession) stageMessage() string {
	if !session.SawOpenBeforeClose {
		return "Keep your eyes open and look at the camera."
	}
	if !session.SawClosedAfterOpen {
		return "Now blink once (close your eyes briefly)."
	}
	if !session.SawReopenAfterClose {
		return "Great. Open your eyes again."
	}
	return "Blink sequence complete."
}

func (session *LivenessSession) captureMessage() string {
	openState := "pending"
	if session.OpenEye.Captured {
		openState = "captured"
	}
	closedState := "pending"
	if session.ClosedEye.Captured {
		closedState = "captured"
	}
	return fmt.Sprintf("Open-eye: %s | Closed-eye: %s", openState, closedState)
}
