package liveness

import (
	"errors"
	"strings"
	"testing"
	"time"

	"blinkgate.io/infrastructure/vision/types"
)

func newTestArbiter(sink *memorySink) *CaptureArbiter {
	arbiter := NewCaptureArbiter(sink)
	current := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	arbiter.now = func() time.Time {
		current = current.Add(200 * time.Millisecond)
		return current
	}
	return arbiter
}

func TestConsiderStrictImprovement(t *testing.T) {
	sink := &memorySink{}
	arbiter := newTestArbiter(sink)
	session := NewLivenessSession("user::token", time.Now())
	frame := []byte("frame")

	replaced, err := arbiter.Consider(session, types.EyeStateOpen, 100, frame, "user@example.com")
	if err != nil || !replaced {
		t.Fatalf("first frame should always be recorded, replaced=%v err=%v", replaced, err)
	}
	firstLocator := session.OpenEye.StorageLocator

	replaced, err = arbiter.Consider(session, types.EyeStateOpen, 100, frame, "user@example.com")
	if err != nil {
		t.Fatalf("tie consideration errored: %v", err)
	}
	if replaced {
		t.Error("an equal score must not replace the stored capture")
	}
	if session.OpenEye.StorageLocator != firstLocator {
		t.Error("tie consideration changed the stored locator")
	}

	replaced, err = arbiter.Consider(session, types.EyeStateOpen, 150, frame, "user@example.com")
	if err != nil || !replaced {
		t.Fatalf("better frame should replace, replaced=%v err=%v", replaced, err)
	}
	if len(sink.deleted) != 1 || sink.deleted[0] != firstLocator {
		t.Errorf("previous artifact should be deleted on replacement, deletes=%v", sink.deleted)
	}
	if session.OpenEye.BestScore != 150 {
		t.Errorf("BestScore = %f, want 150", session.OpenEye.BestScore)
	}
	if len(sink.stored) != 1 {
		t.Errorf("exactly one open capture should remain, got %d", len(sink.stored))
	}
}

func TestConsiderKeepsEyeStatesSeparate(t *testing.T) {
	sink := &memorySink{}
	arbiter := newTestArbiter(sink)
	session := NewLivenessSession("user::token", time.Now())

	if _, err := arbiter.Consider(session, types.EyeStateOpen, 120, []byte("open"), "user@example.com"); err != nil {
		t.Fatalf("open consideration errored: %v", err)
	}
	if _, err := arbiter.Consider(session, types.EyeStateClosed, 90, []byte("closed"), "user@example.com"); err != nil {
		t.Fatalf("closed consideration errored: %v", err)
	}

	if !strings.HasPrefix(session.OpenEye.StorageLocator, OpenEyeArea+"/") {
		t.Errorf("open capture stored under %q", session.OpenEye.StorageLocator)
	}
	if !strings.HasPrefix(session.ClosedEye.StorageLocator, ClosedEyeArea+"/") {
		t.Errorf("closed capture stored under %q", session.ClosedEye.StorageLocator)
	}
	if len(sink.stored) != 2 {
		t.Errorf("expected one artifact per eye state, got %d", len(sink.stored))
	}
}

func TestConsiderIgnoresUnsureFrames(t *testing.T) {
	sink := &memorySink{}
	arbiter := newTestArbiter(sink)
	session := NewLivenessSession("user::token", time.Now())

	replaced, err := arbiter.Consider(session, types.EyeStateUnsure, 500, []byte("frame"), "user@example.com")
	if err != nil {
		t.Fatalf("unsure consideration errored: %v", err)
	}
	if replaced || len(sink.stored) != 0 {
		t.Errorf("unsure frames must never be stored, replaced=%v stored=%d", replaced, len(sink.stored))
	}
}

func TestConsiderSanitizesIdentityInArtifactNames(t *testing.T) {
	sink := &memorySink{}
	arbiter := newTestArbiter(sink)
	session := NewLivenessSession("user::token", time.Now())

	if _, err := arbiter.Consider(session, types.EyeStateOpen, 120, []byte("frame"), "user+test@example.com/../x"); err != nil {
		t.Fatalf("consideration errored: %v", err)
	}
	locator := session.OpenEye.StorageLocator
	if strings.Contains(locator, "+") || strings.Contains(locator, "/../") {
		t.Errorf("identity was not sanitized in locator %q", locator)
	}
}

func TestConsiderUploadFailureResetsBucket(t *testing.T) {
	sink := &memorySink{}
	arbiter := newTestArbiter(sink)
	session := NewLivenessSession("user::token", time.Now())

	if _, err := arbiter.Consider(session, types.EyeStateOpen, 100, []byte("frame"), "user@example.com"); err != nil {
		t.Fatalf("setup consideration errored: %v", err)
	}

	sink.uploadErr = errors.New("blob store unreachable")
	if _, err := arbiter.Consider(session, types.EyeStateOpen, 150, []byte("frame"), "user@example.com"); err == nil {
		t.Fatal("expected an error when the upload fails")
	}

	// The old artifact is already gone. The bucket must reopen fully so
	// the next accepted frame can capture from scratch.
	if session.OpenEye.Captured {
		t.Error("bucket still marked captured after a failed replacement")
	}
	if session.OpenEye.StorageLocator != "" {
		t.Errorf("stale locator %q left after a failed replacement", session.OpenEye.StorageLocator)
	}
	if session.OpenEye.BestScore != initialScore {
		t.Errorf("BestScore = %f after failure, want sentinel %f", session.OpenEye.BestScore, initialScore)
	}

	sink.uploadErr = nil
	replaced, err := arbiter.Consider(session, types.EyeStateOpen, 90, []byte("frame"), "user@example.com")
	if err != nil || !replaced {
		t.Errorf("recovery frame should capture, replaced=%v err=%v", replaced, err)
	}
}

func TestConsiderDeleteFailureKeepsExistingCapture(t *testing.T) {
	sink := &memorySink{}
	arbiter := newTestArbiter(sink)
	session := NewLivenessSession("user::token", time.Now())

	if _, err := arbiter.Consider(session, types.EyeStateOpen, 100, []byte("frame"), "user@example.com"); err != nil {
		t.Fatalf("setup consideration errored: %v", err)
	}
	locator := session.OpenEye.StorageLocator

	sink.deleteErr = errors.New("blob store unreachable")
	if _, err := arbiter.Consider(session, types.EyeStateOpen, 150, []byte("frame"), "user@example.com"); err == nil {
		t.Fatal("expected an error when the delete fails")
	}
	if session.OpenEye.StorageLocator != locator || !session.OpenEye.Captured {
		t.Errorf("existing capture should survive a failed delete, got %+v", session.OpenEye)
	}
}
