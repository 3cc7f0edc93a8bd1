package middleware

import (
	"context"
	"net/http"
	"strings"

	"vibin_web/apperrors"
	"vibin_web/auth"
	"vibin_web/helpers"
	"vibin_web/services"

	"go.uber.org/zap"
)

type contextKey string

const sessionKey contextKey = "session"

// WithSession returns a copy of ctx carrying session
func WithSession(ctx context.Context, session *services.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext returns the session attached by RequireSession
func SessionFromContext(ctx context.Context) (*services.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*services.Session)
	return s, ok
}

// RequireSession resolves the bearer token to an open session and attaches it to the request
func RequireSession(jwt *auth.JWTManager, store *services.SessionStore, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token := strings.TrimPrefix(header, "Bearer ")
			if header == "" || token == header {
				helpers.WriteError(w, apperrors.Unauthorized("missing bearer token", nil))
				return
			}

			claims, err := jwt.VerifyToken(token)
			if err != nil {
				logger.Warn("⚠️ Invalid token", zap.Error(err))
				helpers.WriteError(w, apperrors.Unauthorized("invalid token", err))
				return
			}

			session, ok := store.Get(claims.SessionID)
			if !ok {
				helpers.WriteError(w, apperrors.Unauthorized("session closed", nil))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}
