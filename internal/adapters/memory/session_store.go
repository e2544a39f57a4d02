// Package memory provides the in-process SessionStore used by default.
package memory

import (
	"context"
	"sync"
	"time"

	"shiftbot/internal/domain"
	"shiftbot/internal/ports"
)

// SessionStore keeps live sessions in a process-local map. An optional
// idle TTL discards sessions that saw no event for the given duration;
// expiry behaves exactly like a restart (full discard, no recovery).
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*domain.Session
	ttl      time.Duration
	now      func() time.Time
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a store with the given idle TTL; zero disables expiry
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*domain.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Load returns a copy of the user's session, or (nil, nil) when absent
// or expired
func (s *SessionStore) Load(_ context.Context, userID int64) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, nil
	}

	if s.ttl > 0 && s.now().Sub(sess.UpdatedAt) > s.ttl {
		delete(s.sessions, userID)
		return nil, nil
	}

	return sess.Clone(), nil
}

// Save stores an independent copy of the session
func (s *SessionStore) Save(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.UserID] = session.Clone()
	return nil
}

// Clear removes the user's session; clearing an absent session is a no-op
func (s *SessionStore) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}
