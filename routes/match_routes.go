package routes

import (
	"vibin_web/controllers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterMatchRoutes sets up the match list under /api/chat/matches
func RegisterMatchRoutes(api *mux.Router, logger *zap.Logger) {
	controller := controllers.NewMatchController(logger)

	matchRouter := api.PathPrefix("/chat/matches").Subrouter()
	matchRouter.HandleFunc("", controller.HandleGetMatches).Methods("GET")
	// no id opens the most recent match
	matchRouter.HandleFunc("/select", controller.HandleSelectMatch).Methods("POST")
	matchRouter.HandleFunc("/{matchId}/select", controller.HandleSelectMatch).Methods("POST")
}
