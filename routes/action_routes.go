package routes

import (
	"vibin_web/controllers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterActionRoutes sets up viewing and acting on other profiles under /api/profiles
func RegisterActionRoutes(api *mux.Router, logger *zap.Logger) {
	controller := controllers.NewActionController(logger)

	actionRouter := api.PathPrefix("/profiles/{userId}").Subrouter()
	actionRouter.HandleFunc("", controller.HandleViewProfile).Methods("GET")
	actionRouter.HandleFunc("/like", controller.HandleLike).Methods("POST")
	actionRouter.HandleFunc("/block", controller.HandleBlock).Methods("POST")
	actionRouter.HandleFunc("/report", controller.HandleReport).Methods("POST")
	actionRouter.HandleFunc("/message", controller.HandleMessage).Methods("POST")
}
