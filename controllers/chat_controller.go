package controllers

import (
	"net/http"

	"vibin_web/helpers"

	"go.uber.org/zap"
)

// ChatController drives the open conversation of a session
type ChatController struct {
	Logger *zap.Logger
}

// NewChatController initializes the chat controller
func NewChatController(logger *zap.Logger) *ChatController {
	return &ChatController{Logger: logger}
}

// HandleGetMessages returns the open conversation
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, session.Conversation())
}

// HandleSetDraft records the compose field
func (c *ChatController) HandleSetDraft(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text" validate:"max=2000"`
	}
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, session.SetDraft(req.Text))
}

// HandleSendMessage sends content, or the draft when content is omitted.
// A blank message is accepted and ignored.
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	var req struct {
		Content string `json:"content" validate:"max=2000"`
	}
	if r.ContentLength != 0 {
		if err := helpers.DecodeJSON(r, &req); err != nil {
			helpers.WriteError(w, err)
			return
		}
	}

	ctx, cancel := providerContext(r)
	defer cancel()

	msg, sent, err := session.SendMessage(ctx, req.Content)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	if !sent {
		helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
			"sent":         false,
			"conversation": session.Conversation(),
		})
		return
	}

	c.Logger.Debug("📩 Message sent", zap.String("session", session.ID), zap.String("match", msg.MatchID))
	helpers.WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"sent":         true,
		"message":      msg,
		"conversation": session.Conversation(),
	})
}

// HandleLeave closes the conversation; pending replies are dropped
func (c *ChatController) HandleLeave(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	session.LeaveChat()
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"location": session.Location()})
}
