package session

import (
	"context"
	"sync"

	"escrutinio/internal/electoral/models"
)

// Session is one user's login state.
type Session struct {
	resolver *Resolver

	mu       sync.Mutex
	identity *models.Identity
}

// New returns an Anonymous session.
func New(resolver *Resolver) *Session {
	return &Session{resolver: resolver}
}

// Login authenticates and, on success, becomes Authenticated. On failure the
// session is left Anonymous, even if it was authenticated before.
func (s *Session) Login(ctx context.Context, usernameOrID, password string) (models.Identity, error) {
	identity, err := s.resolver.Authenticate(ctx, usernameOrID, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.identity = nil
		return models.Identity{}, err
	}
	s.identity = &identity
	return identity, nil
}

// Logout returns to Anonymous unconditionally.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
}

// Current returns the live identity or ErrNoSession.
func (s *Session) Current(ctx context.Context) (models.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return models.Identity{}, models.ErrNoSession
	}

	identity, err := s.resolver.Refresh(ctx, *s.identity)
	if err != nil {
		s.identity = nil
		return models.Identity{}, err
	}
	s.identity = &identity
	return identity, nil
}

// Authenticated reports whether the session holds an identity, without
// consulting the store.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil
}
