package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	id "escrutinio/pkg/domain"
	dErrors "escrutinio/pkg/domain-errors"
	"escrutinio/pkg/platform/httputil"
	"escrutinio/pkg/requestcontext"
)

// BearerSession copies a bearer session token into the context. Requests
// without an Authorization header pass through anonymously; the service
// decides whether a session is required. A malformed token is rejected.
func BearerSession(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			token, err := id.ParseSessionToken(raw)
			if !ok || err != nil {
				ctx := r.Context()
				logger.WarnContext(ctx, "unauthorized access - malformed session token",
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing or invalid Authorization header"))
				return
			}

			ctx := requestcontext.WithSessionToken(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
