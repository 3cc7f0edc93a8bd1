package services

import (
	"context"
	"strings"
	"time"

	"vibin_web/models"

	"github.com/google/uuid"
)

// ChatSession is the message log and compose state of the open conversation.
// It is not safe for concurrent use; Session serializes access.
type ChatSession struct {
	matchID  string
	messages []models.Message
	draft    string
	pending  int

	// ctx lives as long as the open conversation; reply timers are bound to it
	ctx    context.Context
	cancel context.CancelFunc
	parent context.Context
}

// NewChatSession returns an idle session whose conversations derive from parent
func NewChatSession(parent context.Context) *ChatSession {
	return &ChatSession{parent: parent}
}

// Load opens the conversation of matchID with its message log. Any pending reply of the
// previous conversation is cancelled.
func (c *ChatSession) Load(matchID string, messages []models.Message) {
	c.Leave()
	c.ctx, c.cancel = context.WithCancel(c.parent)
	c.matchID = matchID
	c.messages = append([]models.Message{}, messages...)
}

// Leave closes the conversation and cancels its pending replies
func (c *ChatSession) Leave() {
	if c.cancel != nil {
		c.cancel()
	}
	c.ctx, c.cancel = nil, nil
	c.matchID = ""
	c.messages = nil
	c.draft = ""
	c.pending = 0
}

// Context is cancelled when the conversation is left or replaced. Nil when idle.
func (c *ChatSession) Context() context.Context {
	return c.ctx
}

func (c *ChatSession) MatchID() string {
	return c.matchID
}

func (c *ChatSession) State() string {
	switch {
	case c.matchID == "":
		return models.ChatStateIdle
	case c.pending > 0:
		return models.ChatStateAwaitingReply
	case strings.TrimSpace(c.draft) != "":
		return models.ChatStateComposing
	default:
		return models.ChatStateLoaded
	}
}

// Typing is true while a counterpart reply is pending
func (c *ChatSession) Typing() bool {
	return c.pending > 0
}

func (c *ChatSession) Draft() string {
	return c.draft
}

// SetDraft records the compose field. Ignored when idle.
func (c *ChatSession) SetDraft(text string) {
	if c.matchID == "" {
		return
	}
	c.draft = text
}

// Messages returns a copy of the log
func (c *ChatSession) Messages() []models.Message {
	return append([]models.Message{}, c.messages...)
}

// AppendOutgoing appends a message from the current user and clears the draft.
// Blank content is a no-op and returns false.
func (c *ChatSession) AppendOutgoing(content string, now time.Time) (models.Message, bool) {
	if c.matchID == "" || strings.TrimSpace(content) == "" {
		return models.Message{}, false
	}
	msg := c.appendMessage(content, models.CurrentUserID, now)
	c.draft = ""
	c.pending++
	return msg, true
}

// RemoveOutgoing rolls back an outgoing message that the provider refused
func (c *ChatSession) RemoveOutgoing(id string) {
	for i, m := range c.messages {
		if m.ID == id {
			c.messages = append(c.messages[:i], c.messages[i+1:]...)
			if c.pending > 0 {
				c.pending--
			}
			return
		}
	}
}

// AppendReply appends the counterpart's reply and settles one pending send
func (c *ChatSession) AppendReply(content string, now time.Time) models.Message {
	msg := c.appendMessage(content, c.matchID, now)
	if c.pending > 0 {
		c.pending--
	}
	return msg
}

// appendMessage keeps timestamps non-decreasing
func (c *ChatSession) appendMessage(content, senderID string, now time.Time) models.Message {
	if n := len(c.messages); n > 0 && now.Before(c.messages[n-1].Timestamp) {
		now = c.messages[n-1].Timestamp
	}
	msg := models.Message{
		MatchID:   c.matchID,
		ID:        uuid.NewString(),
		Content:   content,
		SenderID:  senderID,
		Timestamp: now,
		Type:      models.MessageTypeText,
		Read:      false,
	}
	c.messages = append(c.messages, msg)
	return msg
}
