package controllers

import (
	"net/http"
	"strconv"

	"vibin_web/apperrors"
	"vibin_web/helpers"
	"vibin_web/models"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// UserProfileController handles the signed-in user's own profile
type UserProfileController struct {
	Logger *zap.Logger
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(logger *zap.Logger) *UserProfileController {
	return &UserProfileController{Logger: logger}
}

func (c *UserProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, session.OwnProfile())
}

// HandleUpdateProfile applies the supplied fields; omitted fields are unchanged
func (c *UserProfileController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	var update models.ProfileUpdate
	if err := helpers.DecodeJSON(r, &update); err != nil {
		helpers.WriteError(w, err)
		return
	}
	profile, notice := session.UpdateOwnProfile(update)
	helpers.WriteNotice(w, notice, map[string]interface{}{"profile": profile})
}

// HandleToggleTag adds or removes an interest; a ninth tag is ignored
func (c *UserProfileController) HandleToggleTag(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	var req struct {
		Tag string `json:"tag" validate:"required,max=40"`
	}
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, session.ToggleOwnTag(req.Tag))
}

func (c *UserProfileController) HandleAddPhoto(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	var req struct {
		URL string `json:"url" validate:"required,max=2048"`
	}
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteError(w, err)
		return
	}
	profile, err := session.AddOwnPhoto(req.URL)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, profile)
}

func (c *UserProfileController) HandleRemovePhoto(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		helpers.WriteError(w, apperrors.Validation("photo index must be a number", err))
		return
	}
	profile, err := session.RemoveOwnPhoto(index)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, profile)
}
