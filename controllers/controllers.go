package controllers

import (
	"context"
	"net/http"
	"time"

	"vibin_web/apperrors"
	"vibin_web/helpers"
	"vibin_web/middleware"
	"vibin_web/services"
)

// providerTimeout bounds every call that reaches the data provider
const providerTimeout = 5 * time.Second

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Welcome to Vibin"})
}

// currentSession returns the session attached by the auth middleware, writing a 401 if absent
func currentSession(w http.ResponseWriter, r *http.Request) (*services.Session, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helpers.WriteError(w, apperrors.Unauthorized("no session", nil))
		return nil, false
	}
	return session, true
}

func providerContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), providerTimeout)
}
