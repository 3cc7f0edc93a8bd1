package routes

import (
	"net/http"

	"vibin_web/controllers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterChatRoutes sets up the open conversation under /api/chat. Sending is rate limited.
func RegisterChatRoutes(api *mux.Router, logger *zap.Logger, sendLimit func(http.Handler) http.Handler) {
	controller := controllers.NewChatController(logger)

	chatRouter := api.PathPrefix("/chat").Subrouter()
	chatRouter.HandleFunc("/messages", controller.HandleGetMessages).Methods("GET")
	chatRouter.Handle("/messages", sendLimit(http.HandlerFunc(controller.HandleSendMessage))).Methods("POST")
	chatRouter.HandleFunc("/draft", controller.HandleSetDraft).Methods("PUT")
	chatRouter.HandleFunc("/leave", controller.HandleLeave).Methods("POST")
}
