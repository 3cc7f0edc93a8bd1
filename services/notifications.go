package services

import "vibin_web/models"

// NotificationList is the session's notifications center. Every mutation is idempotent.
type NotificationList struct {
	items    []models.Notification
	settings models.NotificationSettings
}

func NewNotificationList(seed []models.Notification) *NotificationList {
	return &NotificationList{
		items:    append([]models.Notification{}, seed...),
		settings: models.DefaultNotificationSettings(),
	}
}

// List returns a copy in display order
func (l *NotificationList) List() []models.Notification {
	return append([]models.Notification{}, l.items...)
}

func (l *NotificationList) UnreadCount() int {
	n := 0
	for _, item := range l.items {
		if !item.Read {
			n++
		}
	}
	return n
}

// MarkRead sets read on id. Unknown ids are ignored.
func (l *NotificationList) MarkRead(id string) {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Read = true
			return
		}
	}
}

func (l *NotificationList) MarkAllRead() {
	for i := range l.items {
		l.items[i].Read = true
	}
}

// Has reports whether id is in the list
func (l *NotificationList) Has(id string) bool {
	for _, item := range l.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Delete removes id and reports whether it was present
func (l *NotificationList) Delete(id string) bool {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *NotificationList) Settings() models.NotificationSettings {
	return l.settings
}

func (l *NotificationList) UpdateSettings(settings models.NotificationSettings) {
	l.settings = settings
}
