package routes

import (
	"vibin_web/controllers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterSearchRoutes sets up search and its filters under /api/search
func RegisterSearchRoutes(api *mux.Router, logger *zap.Logger) {
	controller := controllers.NewSearchController(logger)

	searchRouter := api.PathPrefix("/search").Subrouter()
	searchRouter.HandleFunc("", controller.HandleGetSearch).Methods("GET")
	searchRouter.HandleFunc("", controller.HandleSearch).Methods("POST")
	searchRouter.HandleFunc("/apply", controller.HandleApply).Methods("POST")
	searchRouter.HandleFunc("/filters", controller.HandleGetFilters).Methods("GET")
	searchRouter.HandleFunc("/filters", controller.HandleSetFilters).Methods("PUT")
	searchRouter.HandleFunc("/filters", controller.HandleClearFilters).Methods("DELETE")
	searchRouter.HandleFunc("/filters/tags", controller.HandleToggleTag).Methods("POST")
}
