package routes

import (
	"vibin_web/controllers"
	"vibin_web/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterS3Routes sets up presigned photo URLs under /api/profile/photos
func RegisterS3Routes(api *mux.Router, photos *services.PhotoService, logger *zap.Logger) {
	controller := controllers.NewPhotoController(photos, logger)

	api.HandleFunc("/profile/photos/upload-url", controller.GeneratePresignedURL).Methods("POST")
	api.HandleFunc("/profile/photos/read-url", controller.GetPresignedReadURL).Methods("POST")
}
