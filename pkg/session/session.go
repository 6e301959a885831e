// Package session keeps the typed per-user session state behind an
// explicit Store. Components receive a Store; nothing reads ambient
// global state.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the typed per-user session shape.
type Session struct {
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Theme      string    `json:"theme,omitempty"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

// Store defines the session lifecycle operations.
type Store interface {
	// Load returns the session for the user, or nil if none exists.
	Load(userID uuid.UUID) *Session
	// Save stores (or replaces) the session.
	Save(s *Session)
	// Clear removes the session. Clearing an absent session is a no-op.
	Clear(userID uuid.UUID)
}

// MemoryStore is the in-process Store implementation.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]Session
}

// NewMemoryStore creates an empty session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[uuid.UUID]Session)}
}

var _ Store = (*MemoryStore)(nil)

func (m *MemoryStore) Load(userID uuid.UUID) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[userID]
	if !ok {
		return nil
	}
	return &s
}

func (m *MemoryStore) Save(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.UserID] = *s
}

func (m *MemoryStore) Clear(userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
}
