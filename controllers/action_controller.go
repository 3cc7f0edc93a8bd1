package controllers

import (
	"net/http"

	"vibin_web/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ActionController handles viewing another member's profile and acting on it
type ActionController struct {
	Logger *zap.Logger
}

// NewActionController creates a new ActionController instance
func NewActionController(logger *zap.Logger) *ActionController {
	return &ActionController{Logger: logger}
}

// HandleViewProfile returns the decorated profile of userId
func (ac *ActionController) HandleViewProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	userID := mux.Vars(r)["userId"]

	ctx, cancel := providerContext(r)
	defer cancel()

	view, err := session.ViewProfile(ctx, userID)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, view)
}

// HandleLike toggles the like on userId
func (ac *ActionController) HandleLike(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	liked, notice := session.ToggleLike(mux.Vars(r)["userId"])
	helpers.WriteNotice(w, notice, map[string]interface{}{"liked": liked})
}

// HandleBlock blocks userId and sends the view back to discovery
func (ac *ActionController) HandleBlock(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	userID := mux.Vars(r)["userId"]
	notice, location := session.BlockProfile(userID)
	ac.Logger.Info("🚫 Profile blocked", zap.String("session", session.ID), zap.String("user", userID))
	helpers.WriteNotice(w, notice, map[string]interface{}{"location": location})
}

func (ac *ActionController) HandleReport(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	var req struct {
		Reason string `json:"reason" validate:"max=500"`
	}
	if r.ContentLength != 0 {
		if err := helpers.DecodeJSON(r, &req); err != nil {
			helpers.WriteError(w, err)
			return
		}
	}
	userID := mux.Vars(r)["userId"]
	ac.Logger.Info("🚩 Profile reported", zap.String("session", session.ID), zap.String("user", userID))
	helpers.WriteNotice(w, session.ReportProfile(userID, req.Reason), nil)
}

// HandleMessage returns the chat location for a liked profile
func (ac *ActionController) HandleMessage(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	location, err := session.MessageProfile(mux.Vars(r)["userId"])
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"location": location})
}
