package repository

import (
	"sync"

	"notes-summarizer/internal/domain"
)

// SessionStore keeps per-session state in memory. Nothing survives a
// process restart, which is intentional: sessions are ephemeral.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.SessionState
}

// NewSessionStore creates an empty in-memory session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.SessionState),
	}
}

// Get returns a snapshot of the session state. Unknown sessions yield the
// zero state, matching a fresh session.
func (s *SessionStore) Get(sessionID string) domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if state, ok := s.sessions[sessionID]; ok {
		return *state
	}
	return domain.SessionState{}
}

// Update applies fn to the session state under the store lock, creating the
// session if it does not exist yet.
func (s *SessionStore) Update(sessionID string, fn func(*domain.SessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		state = &domain.SessionState{}
		s.sessions[sessionID] = state
	}
	fn(state)
}
