package controllers

import (
	"net/http"

	"vibin_web/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// MatchController serves the match list of the chat page
type MatchController struct {
	Logger *zap.Logger
}

func NewMatchController(logger *zap.Logger) *MatchController {
	return &MatchController{Logger: logger}
}

// HandleGetMatches returns matches newest first with the total unread count
func (c *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, session.Matches())
}

// HandleSelectMatch opens a conversation. The match's unread counter resets after the
// read-receipt delay, announced over the socket as unreadReset.
func (c *MatchController) HandleSelectMatch(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	matchID := mux.Vars(r)["matchId"]

	ctx, cancel := providerContext(r)
	defer cancel()

	match, conversation, err := session.SelectMatch(ctx, matchID)
	if err != nil {
		c.Logger.Warn("❌ Failed to select match", zap.String("match", matchID), zap.Error(err))
		helpers.WriteError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"match":    match,
		"messages": conversation.Messages,
		"state":    conversation.State,
		"location": session.Location(),
	})
}
