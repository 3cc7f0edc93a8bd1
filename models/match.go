package models

import "time"

// Match pairs a Profile with conversation metadata. ID always equals User.ID.
type Match struct {
	ID              string    `json:"id"`
	User            Profile   `json:"user"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
	UnreadCount     int       `json:"unreadCount"`
	Online          bool      `json:"online"`
}
