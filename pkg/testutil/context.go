package testutil

import (
	"net/http"

	id "escrutinio/pkg/domain"
	"escrutinio/pkg/requestcontext"
)

// WithBearer sets the Authorization header for token.
func WithBearer(req *http.Request, token id.SessionToken) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token.String())
	return req
}

// WithSessionToken puts token straight into the request context, as the
// bearer middleware would. Use it when calling a handler func directly.
func WithSessionToken(req *http.Request, token id.SessionToken) *http.Request {
	return req.WithContext(requestcontext.WithSessionToken(req.Context(), token))
}
