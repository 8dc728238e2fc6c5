package service

import (
	"context"

	"escrutinio/internal/electoral/models"
	id "escrutinio/pkg/domain"
	"escrutinio/pkg/requestcontext"
)

// LoginResult is a successful login: the bearer token and who it belongs to.
type LoginResult struct {
	Token    id.SessionToken `json:"token"`
	Identity models.Identity `json:"identity"`
}

// Login opens a session. Failures return ErrInvalidCredentials and register
// nothing.
func (s *Service) Login(ctx context.Context, usernameOrID, password string) (res LoginResult, err error) {
	ctx, end := s.start(ctx, "login")
	defer func() { end(err) }()

	token, identity, err := s.sessions.Open(ctx, usernameOrID, password)
	if err != nil {
		s.incrementLogin("", "failure")
		s.logger.InfoContext(ctx, "login rejected",
			"request_id", requestcontext.RequestID(ctx),
			"client_ip", requestcontext.ClientIP(ctx),
			"user_agent", requestcontext.UserAgent(ctx),
		)
		return LoginResult{}, err
	}

	s.incrementLogin(identity.Role, "success")
	s.logger.InfoContext(ctx, "login succeeded",
		"request_id", requestcontext.RequestID(ctx),
		"identity_id", identity.ID,
		"role", identity.Role,
	)
	return LoginResult{Token: token, Identity: identity}, nil
}

// Logout closes the session in the context. It succeeds without a session.
func (s *Service) Logout(ctx context.Context) {
	token := requestcontext.SessionToken(ctx)
	if token.IsNil() {
		return
	}
	s.sessions.Close(token)
	s.logger.InfoContext(ctx, "logout",
		"request_id", requestcontext.RequestID(ctx),
	)
}

// CurrentIdentity returns the live identity of the caller or ErrNoSession.
func (s *Service) CurrentIdentity(ctx context.Context) (models.Identity, error) {
	return s.caller(ctx)
}
