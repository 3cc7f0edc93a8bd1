package controllers

import (
	"net/http"

	"vibin_web/apperrors"
	"vibin_web/helpers"
	"vibin_web/services"

	"go.uber.org/zap"
)

// PhotoController hands out presigned S3 URLs for profile photos
type PhotoController struct {
	Photos *services.PhotoService
	Logger *zap.Logger
}

func NewPhotoController(photos *services.PhotoService, logger *zap.Logger) *PhotoController {
	return &PhotoController{Photos: photos, Logger: logger}
}

// GeneratePresignedURL generates a presigned URL for S3 uploads
func (c *PhotoController) GeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentSession(w, r); !ok {
		return
	}
	if c.Photos == nil {
		helpers.WriteError(w, apperrors.Network("photo storage is not configured", nil))
		return
	}

	var payload struct {
		FileName string `json:"fileName" validate:"required,max=200"`
		FileType string `json:"fileType" validate:"required,max=100"`
	}
	if err := helpers.DecodeJSON(r, &payload); err != nil {
		helpers.WriteError(w, err)
		return
	}

	url, key, err := c.Photos.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		c.Logger.Error("❌ Error generating pre-signed URL", zap.String("file", payload.FileName), zap.Error(err))
		helpers.WriteError(w, err)
		return
	}

	c.Logger.Info("✅ Generated upload URL", zap.String("key", key))
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url, "fileName": key})
}

// GetPresignedReadURL generates a presigned URL for reading an uploaded photo
func (c *PhotoController) GetPresignedReadURL(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentSession(w, r); !ok {
		return
	}
	if c.Photos == nil {
		helpers.WriteError(w, apperrors.Network("photo storage is not configured", nil))
		return
	}

	var payload struct {
		Key string `json:"key" validate:"required,max=512"`
	}
	if err := helpers.DecodeJSON(r, &payload); err != nil {
		helpers.WriteError(w, err)
		return
	}

	url, err := c.Photos.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		c.Logger.Error("❌ Error generating read URL", zap.String("key", payload.Key), zap.Error(err))
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url})
}
