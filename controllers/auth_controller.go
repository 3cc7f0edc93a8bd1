package controllers

import (
	"net/http"

	"vibin_web/apperrors"
	"vibin_web/auth"
	"vibin_web/helpers"
	"vibin_web/middleware"
	"vibin_web/services"

	"go.uber.org/zap"
)

// AuthController opens and closes sessions. Credentials are not checked against any store.
type AuthController struct {
	Store   *services.SessionStore
	JWT     *auth.JWTManager
	Limiter *middleware.LimiterStore
	Logger  *zap.Logger
}

func NewAuthController(store *services.SessionStore, jwt *auth.JWTManager, limiter *middleware.LimiterStore, logger *zap.Logger) *AuthController {
	return &AuthController{Store: store, JWT: jwt, Limiter: limiter, Logger: logger}
}

type credentials struct {
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=128"`
	Name     string `json:"name,omitempty" validate:"max=60"`
}

// HandleLogin opens a fresh session and returns its token
func (c *AuthController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	c.openSession(w, r, "login")
}

// HandleRegister behaves like login; there is no account store
func (c *AuthController) HandleRegister(w http.ResponseWriter, r *http.Request) {
	c.openSession(w, r, "register")
}

func (c *AuthController) openSession(w http.ResponseWriter, r *http.Request, action string) {
	var req credentials
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteError(w, err)
		return
	}

	ctx, cancel := providerContext(r)
	defer cancel()

	session, err := c.Store.Open(ctx)
	if err != nil {
		c.Logger.Error("❌ Failed to open session", zap.String("action", action), zap.Error(err))
		helpers.WriteError(w, err)
		return
	}

	token, expiresAt, err := c.JWT.GenerateToken(session.ID, req.Email)
	if err != nil {
		c.Store.Close(session.ID)
		helpers.WriteError(w, apperrors.Internal("failed to issue token", err))
		return
	}

	c.Logger.Info("🔑 Signed in", zap.String("action", action), zap.String("session", session.ID))
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"token":     token,
		"sessionId": session.ID,
		"expiresAt": expiresAt,
		"location":  session.Location(),
	})
}

// HandleLogout closes the caller's session and cancels its timers
func (c *AuthController) HandleLogout(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	c.Store.Close(session.ID)
	if c.Limiter != nil {
		c.Limiter.Forget(session.ID)
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Signed out", "location": "/"})
}
