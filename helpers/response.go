package helpers

import (
	"encoding/json"
	"net/http"

	"vibin_web/apperrors"
	"vibin_web/models"
)

// WriteJSONResponse writes payload as JSON with the given status
func WriteJSONResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// WriteError maps err onto its AppError status and writes {"error": {...}}
func WriteError(w http.ResponseWriter, err error) {
	appErr := apperrors.As(err)
	WriteJSONResponse(w, appErr.Status, map[string]errorBody{
		"error": {
			Code:      appErr.Code,
			Message:   appErr.Message,
			Retryable: appErr.Retryable(),
		},
	})
}

// WriteNotice writes a success notice, optionally with extra fields merged in
func WriteNotice(w http.ResponseWriter, notice models.Notice, extra map[string]interface{}) {
	body := map[string]interface{}{"notice": notice}
	for k, v := range extra {
		body[k] = v
	}
	WriteJSONResponse(w, http.StatusOK, body)
}

// DecodeJSON decodes the request body into dst and validates it
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.Validation("invalid request body", err)
	}
	return Validate(dst)
}
