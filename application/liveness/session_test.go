package liveness

import (
	"testing"
	"time"

	"blinkgate.io/infrastructure/vision/types"
)

func TestSessionKey(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		token    string
		want     string
	}{
		{
			name:     "identity is case normalized",
			identity: "User@Example.COM",
			token:    "Tok3n",
			want:     "user@example.com::Tok3n",
		},
		{
			name:     "token casing is preserved",
			identity: "user@example.com",
			token:    "AbC",
			want:     "user@example.com::AbC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SessionKey(tt.identity, tt.token); got != tt.want {
				t.Errorf("SessionKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordEyeState(t *testing.T) {
	tests := []struct {
		name       string
		sequence   []types.EyeState
		wantOpen   bool
		wantClosed bool
		wantReopen bool
	}{
		{
			name:     "closed before any open is ignored",
			sequence: []types.EyeState{types.EyeStateClosed, types.EyeStateClosed},
		},
		{
			name:     "open starts the sequence",
			sequence: []types.EyeState{types.EyeStateOpen},
			wantOpen: true,
		},
		{
			name:       "open then closed",
			sequence:   []types.EyeState{types.EyeStateOpen, types.EyeStateClosed},
			wantOpen:   true,
			wantClosed: true,
		},
		{
			name:       "full blink",
			sequence:   []types.EyeState{types.EyeStateOpen, types.EyeStateClosed, types.EyeStateOpen},
			wantOpen:   true,
			wantClosed: true,
			wantReopen: true,
		},
		{
			name:     "repeated opens before a close do not count as reopen",
			sequence: []types.EyeState{types.EyeStateOpen, types.EyeStateOpen, types.EyeStateOpen},
			wantOpen: true,
		},
		{
			name: "stages are idempotent once reached",
			sequence: []types.EyeState{
				types.EyeStateOpen, types.EyeStateClosed, types.EyeStateOpen,
				types.EyeStateClosed, types.EyeStateOpen,
			},
			wantOpen:   true,
			wantClosed: true,
			wantReopen: true,
		},
		{
			name:     "unsure frames never advance the sequence",
			sequence: []types.EyeState{types.EyeStateUnsure, types.EyeStateUnsure},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewLivenessSession("user::token", time.Now())
			for _, state := range tt.sequence {
				session.RecordEyeState(state)
			}
			if session.SawOpenBeforeClose != tt.wantOpen {
				t.Errorf("SawOpenBeforeClose = %v, want %v", session.SawOpenBeforeClose, tt.wantOpen)
			}
			if session.SawClosedAfterOpen != tt.wantClosed {
				t.Errorf("SawClosedAfterOpen = %v, want %v", session.SawClosedAfterOpen, tt.wantClosed)
			}
			if session.SawReopenAfterClose != tt.wantReopen {
				t.Errorf("SawReopenAfterClose = %v, want %v", session.SawReopenAfterClose, tt.wantReopen)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	fullGesture := func(session *LivenessSession) {
		session.SawOpenBeforeClose = true
		session.SawClosedAfterOpen = true
		session.SawReopenAfterClose = true
	}

	t.Run("gesture alone is not enough", func(t *testing.T) {
		session := NewLivenessSession("user::token", time.Now())
		fullGesture(session)
		if session.Complete() {
			t.Error("session without captures must not complete")
		}
	})

	t.Run("captures alone are not enough", func(t *testing.T) {
		session := NewLivenessSession("user::token", time.Now())
		session.OpenEye.Captured = true
		session.ClosedEye.Captured = true
		if session.Complete() {
			t.Error("session without the reopen stage must not complete")
		}
	})

	t.Run("captures plus full gesture complete", func(t *testing.T) {
		session := NewLivenessSession("user::token", time.Now())
		fullGesture(session)
		session.OpenEye.Captured = true
		session.ClosedEye.Captured = true
		if !session.Complete() {
			t.Error("session with both captures and the full gesture should complete")
		}
	})
}

func TestHasExpired(t *testing.T) {
	startedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	session := NewLivenessSession("user::token", startedAt)

	if session.HasExpired(startedAt.Add(DefaultSessionTimeout), DefaultSessionTimeout) {
		t.Error("session exactly at the timeout boundary should still be live")
	}
	if !session.HasExpired(startedAt.Add(DefaultSessionTimeout+time.Nanosecond), DefaultSessionTimeout) {
		t.Error("session past the timeout should be expired")
	}
}

func TestSweepExpired(t *testing.T) {
	startedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store := NewSessionStore()
	store.getOrCreate("stale::a", startedAt)
	store.getOrCreate("fresh::b", startedAt.Add(20*time.Second))

	removed := store.sweepExpired(startedAt.Add(31*time.Second), 30*time.Second)
	if len(removed) != 1 || removed[0] != "stale::a" {
		t.Errorf("sweepExpired() removed %v, want only the stale key", removed)
	}
	if store.size() != 1 {
		t.Errorf("store size = %d after sweep, want 1", store.size())
	}
}
