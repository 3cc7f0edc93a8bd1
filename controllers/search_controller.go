package controllers

import (
	"net/http"

	"vibin_web/helpers"
	"vibin_web/models"

	"go.uber.org/zap"
)

// SearchController serves the search page and its filter panel
type SearchController struct {
	Logger *zap.Logger
}

func NewSearchController(logger *zap.Logger) *SearchController {
	return &SearchController{Logger: logger}
}

func (c *SearchController) HandleGetSearch(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, session.Search())
}

// HandleSearch runs a query and replaces the results with a fresh batch
func (c *SearchController) HandleSearch(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	var req struct {
		Query string `json:"query" validate:"max=200"`
	}
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteError(w, err)
		return
	}

	ctx, cancel := providerContext(r)
	defer cancel()

	snapshot, err := session.RunSearch(ctx, req.Query)
	if err != nil {
		c.Logger.Warn("❌ Search failed", zap.Error(err))
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, snapshot)
}

func (c *SearchController) HandleGetFilters(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	snapshot := session.Search()
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"filters":       snapshot.Filters,
		"activeFilters": snapshot.ActiveFilters,
	})
}

// HandleSetFilters replaces the criteria after validating the ranges
func (c *SearchController) HandleSetFilters(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	var filters models.SearchFilters
	if err := helpers.DecodeJSON(r, &filters); err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, session.SetFilters(filters))
}

func (c *SearchController) HandleClearFilters(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, session.ClearFilters())
}

func (c *SearchController) HandleToggleTag(w http.ResponseWriter, r *http.Request) {
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
	helpers.WriteJSONResponse(w, http.StatusOK, session.ToggleFilterTag(req.Tag))
}

// HandleApply discards the results and fetches a fresh batch
func (c *SearchController) HandleApply(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}

	ctx, cancel := providerContext(r)
	defer cancel()

	snapshot, err := session.ApplyFilters(ctx)
	if err != nil {
		c.Logger.Warn("❌ Applying filters failed", zap.Error(err))
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, snapshot)
}
