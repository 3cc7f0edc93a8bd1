package controllers

import (
	"net/http"

	"vibin_web/helpers"
	"vibin_web/models"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NotificationController serves the notifications center
type NotificationController struct {
	Logger *zap.Logger
}

func NewNotificationController(logger *zap.Logger) *NotificationController {
	return &NotificationController{Logger: logger}
}

func (c *NotificationController) writeList(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	items, unread := session.Notifications()
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"notifications": items,
		"unreadCount":   unread,
	})
}

func (c *NotificationController) HandleGetNotifications(w http.ResponseWriter, r *http.Request) {
	c.writeList(w, r)
}

// HandleMarkRead marks one notification read; unknown ids are ignored
func (c *NotificationController) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	session.MarkNotificationRead(mux.Vars(r)["id"])
	c.writeList(w, r)
}

func (c *NotificationController) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	session.MarkAllNotificationsRead()
	c.writeList(w, r)
}

// HandleDelete dismisses a notification; deleting an absent id is not an error
func (c *NotificationController) HandleDelete(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	ctx, cancel := providerContext(r)
	defer cancel()

	if err := session.DeleteNotification(ctx, id); err != nil {
		c.Logger.Warn("❌ Failed to delete notification", zap.String("id", id), zap.Error(err))
		helpers.WriteError(w, err)
		return
	}
	c.writeList(w, r)
}

func (c *NotificationController) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, session.NotificationSettings())
}

func (c *NotificationController) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(w, r)
	if !ok {
		return
	}
	var settings models.NotificationSettings
	if err := helpers.DecodeJSON(r, &settings); err != nil {
		helpers.WriteError(w, err)
		return
	}
	session.UpdateNotificationSettings(settings)
	helpers.WriteNotice(w, models.Notice{
		Title:       "Settings saved",
		Description: "Your notification preferences have been updated.",
	}, map[string]interface{}{"settings": session.NotificationSettings()})
}
