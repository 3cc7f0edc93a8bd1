package routes

import (
	"vibin_web/controllers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterUserProfileRoutes sets up the signed-in user's own profile under /api/profile
func RegisterUserProfileRoutes(api *mux.Router, logger *zap.Logger) {
	controller := controllers.NewUserProfileController(logger)

	profileRouter := api.PathPrefix("/profile").Subrouter()
	profileRouter.HandleFunc("", controller.HandleGetProfile).Methods("GET")
	profileRouter.HandleFunc("", controller.HandleUpdateProfile).Methods("PATCH")
	profileRouter.HandleFunc("/tags", controller.HandleToggleTag).Methods("POST")
	profileRouter.HandleFunc("/photos", controller.HandleAddPhoto).Methods("POST")
	profileRouter.HandleFunc("/photos/{index:[0-9]+}", controller.HandleRemovePhoto).Methods("DELETE")
}
