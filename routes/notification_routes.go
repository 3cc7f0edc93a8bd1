package routes

import (
	"vibin_web/controllers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterNotificationRoutes sets up the notifications center under /api/notifications
func RegisterNotificationRoutes(api *mux.Router, logger *zap.Logger) {
	controller := controllers.NewNotificationController(logger)

	notificationRouter := api.PathPrefix("/notifications").Subrouter()
	notificationRouter.HandleFunc("", controller.HandleGetNotifications).Methods("GET")
	notificationRouter.HandleFunc("/read-all", controller.HandleMarkAllRead).Methods("POST")
	notificationRouter.HandleFunc("/settings", controller.HandleGetSettings).Methods("GET")
	notificationRouter.HandleFunc("/settings", controller.HandleUpdateSettings).Methods("PUT")
	notificationRouter.HandleFunc("/{id}/read", controller.HandleMarkRead).Methods("PATCH")
	notificationRouter.HandleFunc("/{id}", controller.HandleDelete).Methods("DELETE")
}
