package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prefiction/backend/internal/model"
	"github.com/prefiction/backend/internal/repository"
	"github.com/prefiction/backend/pkg/auth"
)

// SessionService manages admin sessions over a SessionStore.
// Implements auth.SessionValidator.
type SessionService struct {
	store repository.SessionStore
	ttl   time.Duration
	now   func() time.Time
}

// NewSessionService creates a SessionService with the given TTL.
func NewSessionService(store repository.SessionStore, ttl time.Duration) *SessionService {
	return &SessionService{store: store, ttl: ttl, now: time.Now}
}

// Create generates a new opaque session token, stores it, and returns the
// session.
func (s *SessionService) Create(ctx context.Context) (*model.Session, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		slog.Error("session token generation failed", "error", err)
		return nil, err
	}
	now := s.now()
	session := &model.Session{
		ID:        token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.store.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Validate checks a session token. An unknown token fails; an expired
// session fails and is evicted from the store. On success the expiry
// slides forward by the full TTL.
func (s *SessionService) Validate(ctx context.Context, id string) error {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return errors.New("invalid session")
	}
	now := s.now()
	if session.Expired(now) {
		_ = s.store.Delete(ctx, id)
		return errors.New("session expired")
	}
	session.ExpiresAt = now.Add(s.ttl)
	return s.store.Put(ctx, session)
}

// Destroy removes a session (logout). Destroying an absent session is not
// an error.
func (s *SessionService) Destroy(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Sweep evicts all expired sessions and returns how many were removed.
func (s *SessionService) Sweep(ctx context.Context) int {
	n, err := s.store.SweepExpired(ctx, s.now())
	if err != nil {
		slog.Error("session sweep failed", "error", err)
		return 0
	}
	return n
}
