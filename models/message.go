package models

import "time"

// CurrentUserID is the fixed sender id of the signed-in user
const CurrentUserID = "current-user"

// Message content types. Only text is populated.
const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
	MessageTypeAudio = "audio"
)

type Message struct {
	MatchID   string    `dynamodbav:"matchId" json:"matchId"`     // ✅ Partition Key
	Timestamp time.Time `dynamodbav:"timestamp" json:"timestamp"` // ✅ Sort Key
	ID        string    `dynamodbav:"messageId" json:"id"`
	Content   string    `dynamodbav:"content" json:"content"`
	SenderID  string    `dynamodbav:"senderId" json:"senderId"`
	Type      string    `dynamodbav:"type" json:"type"`
	Read      bool      `dynamodbav:"read" json:"read"`
}

// FromCurrentUser reports whether the message was written by the signed-in user
func (m Message) FromCurrentUser() bool {
	return m.SenderID == CurrentUserID
}

// MessagesTable is the DynamoDB table name for conversation messages
const MessagesTable = "Messages"
