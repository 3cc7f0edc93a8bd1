package routes

import (
	"net/http"

	"vibin_web/controllers"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up login, register and logout under /api/auth. Only logout needs a session.
func RegisterAuthRoutes(r *mux.Router, controller *controllers.AuthController, requireSession func(http.Handler) http.Handler) {
	authRouter := r.PathPrefix("/api/auth").Subrouter()

	authRouter.HandleFunc("/login", controller.HandleLogin).Methods("POST")
	authRouter.HandleFunc("/register", controller.HandleRegister).Methods("POST")
	authRouter.Handle("/logout", requireSession(http.HandlerFunc(controller.HandleLogout))).Methods("POST")
}
