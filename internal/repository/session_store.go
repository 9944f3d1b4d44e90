package repository

import (
	"context"
	"sync"
	"time"

	"github.com/prefiction/backend/internal/model"
)

// SessionStore handles persistence for admin sessions. The in-memory
// implementation below is process-local and unreplicated — sessions are
// lost on restart, which is acceptable for the internal admin view. A
// multi-instance deployment needs an implementation backed by a shared
// store behind this same interface.
type SessionStore interface {
	// Put stores or replaces a session keyed by its ID.
	Put(ctx context.Context, s *model.Session) error

	// Get returns the session with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Session, error)

	// Delete removes a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error

	// SweepExpired removes all sessions expired at the given time and
	// returns how many were removed.
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}

// MemorySessionStore is the in-memory SessionStore. Unlike the rest of the
// request path it needs its own locking: sessions are shared mutable state
// across concurrently served requests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]model.Session
}

// NewMemorySessionStore creates an empty MemorySessionStore.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]model.Session)}
}

var _ SessionStore = (*MemorySessionStore)(nil)

func (m *MemorySessionStore) Put(_ context.Context, s *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	// Copy out so callers cannot mutate stored state without Put.
	return &s, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemorySessionStore) SweepExpired(_ context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of stored sessions. Intended for tests and
// diagnostics.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
