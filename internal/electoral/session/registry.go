package session

import (
	"context"
	"sync"

	"escrutinio/internal/electoral/models"
	id "escrutinio/pkg/domain"
)

// Registry keeps one Session per bearer token, for transports that serve
// several users at once.
type Registry struct {
	resolver *Resolver

	mu       sync.RWMutex
	sessions map[id.SessionToken]*Session
}

func NewRegistry(resolver *Resolver) *Registry {
	return &Registry{
		resolver: resolver,
		sessions: make(map[id.SessionToken]*Session),
	}
}

// Open logs in on a fresh session and returns its token. Nothing is
// registered when the credentials are rejected.
func (r *Registry) Open(ctx context.Context, usernameOrID, password string) (id.SessionToken, models.Identity, error) {
	s := New(r.resolver)
	identity, err := s.Login(ctx, usernameOrID, password)
	if err != nil {
		return id.SessionToken{}, models.Identity{}, err
	}

	token := id.NewSessionToken()
	r.mu.Lock()
	r.sessions[token] = s
	r.mu.Unlock()
	return token, identity, nil
}

// Current resolves the identity behind token. Sessions that no longer resolve
// are dropped.
func (r *Registry) Current(ctx context.Context, token id.SessionToken) (models.Identity, error) {
	r.mu.RLock()
	s, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok {
		return models.Identity{}, models.ErrNoSession
	}

	identity, err := s.Current(ctx)
	if err != nil {
		r.Close(token)
		return models.Identity{}, err
	}
	return identity, nil
}

// Close logs the session out and forgets the token. Unknown tokens are
// ignored.
func (r *Registry) Close(token id.SessionToken) {
	r.mu.Lock()
	s, ok := r.sessions[token]
	delete(r.sessions, token)
	r.mu.Unlock()
	if ok {
		s.Logout()
	}
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
