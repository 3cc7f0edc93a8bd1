package models

// Notification types
const (
	NotificationTypeLike      = "like"
	NotificationTypeView      = "view"
	NotificationTypeMessage   = "message"
	NotificationTypeMatch     = "match"
	NotificationTypeUnlike    = "unlike"
	NotificationTypeSuperlike = "superlike"
)

type Notification struct {
	ID          string `dynamodbav:"id" json:"id"` // ✅ Partition Key
	Type        string `dynamodbav:"type" json:"type"`
	Title       string `dynamodbav:"title" json:"title"`
	Description string `dynamodbav:"description" json:"description"`
	Time        string `dynamodbav:"time" json:"time"` // relative label, e.g. "2 minutes ago"
	Avatar      string `dynamodbav:"avatar" json:"avatar"`
	Username    string `dynamodbav:"username" json:"username"`
	Read        bool   `dynamodbav:"read" json:"read"`
	ActionURL   string `dynamodbav:"actionUrl,omitempty" json:"actionUrl,omitempty"`
}

// NotificationSettings are the delivery toggles of the notifications center
type NotificationSettings struct {
	Likes     bool `json:"likes"`
	Matches   bool `json:"matches"`
	Messages  bool `json:"messages"`
	Views     bool `json:"views"`
	Marketing bool `json:"marketing"`
	Push      bool `json:"push"`
	Email     bool `json:"email"`
	SMS       bool `json:"sms"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Likes:    true,
		Matches:  true,
		Messages: true,
		Push:     true,
		Email:    true,
	}
}

// NotificationsTable is the DynamoDB table name for notifications
const NotificationsTable = "Notifications"
