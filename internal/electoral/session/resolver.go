// Package session resolves who is using the system.
//
// A Session is a two-state machine: Anonymous or Authenticated(identity).
// Credentials are checked against a small allow-list of administrators first
// and then against the agents held by the store. Passwords are compared in
// plain text.
//
// Agent identities are re-derived from the store every time they are read, so
// a table reassignment is visible without logging in again and a deleted
// agent loses its session.
package session

import (
	"context"
	"errors"
	"strings"

	"escrutinio/internal/electoral/models"
	id "escrutinio/pkg/domain"
	"escrutinio/pkg/platform/sentinel"
)

// AgentDirectory is the read side of the store the resolver needs.
type AgentDirectory interface {
	ListAgents(ctx context.Context) []models.Agent
	FindAgent(ctx context.Context, agentID id.AgentID) (models.Agent, error)
}

// Resolver turns credentials into identities.
type Resolver struct {
	admins []models.AdminAccount
	agents AgentDirectory
}

func NewResolver(admins []models.AdminAccount, agents AgentDirectory) *Resolver {
	return &Resolver{
		admins: append([]models.AdminAccount(nil), admins...),
		agents: agents,
	}
}

// Authenticate checks usernameOrID and password.
//
// Both inputs are trimmed. The username is lower-cased for the administrator
// comparison only; agent national IDs are matched exactly as entered. The
// first agent whose national ID and password both match wins.
func (r *Resolver) Authenticate(ctx context.Context, usernameOrID, password string) (models.Identity, error) {
	user := strings.TrimSpace(usernameOrID)
	pass := strings.TrimSpace(password)

	lowered := strings.ToLower(user)
	for _, a := range r.admins {
		if strings.ToLower(a.Username) == lowered && a.Password == pass {
			return adminIdentity(a), nil
		}
	}

	for _, a := range r.agents.ListAgents(ctx) {
		if string(a.NationalID) == user && a.Password == pass {
			return agentIdentity(a), nil
		}
	}
	return models.Identity{}, models.ErrInvalidCredentials
}

// Refresh re-reads an agent identity from the store. Administrator identities
// are returned unchanged. A vanished agent yields ErrNoSession.
func (r *Resolver) Refresh(ctx context.Context, identity models.Identity) (models.Identity, error) {
	if !identity.IsAgent() {
		return identity, nil
	}
	a, err := r.agents.FindAgent(ctx, id.AgentID(identity.ID))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Identity{}, models.ErrNoSession
		}
		return models.Identity{}, err
	}
	return agentIdentity(a), nil
}

func adminIdentity(a models.AdminAccount) models.Identity {
	return models.Identity{ID: a.ID, Name: a.Name, Role: models.RoleAdmin}
}

func agentIdentity(a models.Agent) models.Identity {
	return models.Identity{
		ID:      a.ID.String(),
		Name:    a.Name,
		Role:    models.RoleAgent,
		TableID: a.TableID,
	}
}
