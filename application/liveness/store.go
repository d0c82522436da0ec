package liveness

import (
	"sync"
	"time"
)

// SessionStore maps session keys to in-progress attempts. It is the
// engine's single point of mutual exclusion: ProcessFrame holds mu
// for the whole frame algorithm, so every method below assumes the
// lock is already held.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*LivenessSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: map[string]*LivenessSession{},
	}
}

func (store *SessionStore) get(key string) *LivenessSession {
	return store.sessions[key]
}

func (store *SessionStore) getOrCreate(key string, now time.Time) *LivenessSession {
	session := store.sessions[key]
	if session == nil {
		session = NewLivenessSession(key, now)
		store.sessions[key] = session
	}
	return session
}

func (store *SessionStore) remove(key string) {
	delete(store.sessions, key)
}

// sweepExpired evicts every session older than timeout. It runs on
// every incoming frame rather than on a background timer, which keeps
// memory bounded by request traffic at O(active sessions) per call.
func (store *SessionStore) sweepExpired(now time.Time, timeout time.Duration) []string {
	removed := []string{}
	for key, session := range store.sessions {
		if session.HasExpired(now, timeout) {
			delete(store.sessions, key)
			removed = append(removed, key)
		}
	}
	return removed
}

func (store *SessionStore) size() int {
	return len(store.sessions)
}
