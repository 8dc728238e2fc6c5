package service

import (
	"context"

	"escrutinio/internal/electoral/models"
	id "escrutinio/pkg/domain"
)

//go:generate mockgen -source=sessions.go -destination=mocks/mocks.go -package=mocks

// Sessions maps bearer tokens to live identities.
type Sessions interface {
	Open(ctx context.Context, usernameOrID, password string) (id.SessionToken, models.Identity, error)
	Current(ctx context.Context, token id.SessionToken) (models.Identity, error)
	Close(token id.SessionToken)
}
