package controllers

import (
	"net/http"
	"strconv"

	"vibin_web/apperrors"
	"vibin_web/helpers"
)

const (
	defaultDiscoverCount = 10
	maxDiscoverCount     = 50
)

// HandleDiscover returns a fresh batch of profiles for the discovery feed
func HandleDiscover(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}

	count := defaultDiscoverCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxDiscoverCount {
			helpers.WriteError(w, apperrors.Validation("count must be between 1 and 50", err))
			return
		}
		count = n
	}

	ctx, cancel := providerContext(r)
	defer cancel()

	profiles, err := session.Discover(ctx, count)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"profiles": profiles,
		"location": session.Location(),
	})
}
