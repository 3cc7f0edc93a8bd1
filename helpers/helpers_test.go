package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibin_web/apperrors"
	"vibin_web/models"
)

func TestValidateSearchFilters(t *testing.T) {
	ok := models.DefaultSearchFilters()
	assert.NoError(t, Validate(ok))

	inverted := models.DefaultSearchFilters()
	inverted.AgeRange = [2]int{40, 30}
	assert.True(t, apperrors.Is(Validate(inverted), apperrors.KindValidation))

	tooYoung := models.DefaultSearchFilters()
	tooYoung.AgeRange = [2]int{16, 30}
	assert.Error(t, Validate(tooYoung))

	badFame := models.DefaultSearchFilters()
	badFame.FameRange = [2]float64{4, 2}
	assert.Error(t, Validate(badFame))

	badSort := models.DefaultSearchFilters()
	badSort.SortBy = "random"
	assert.Error(t, Validate(badSort))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, apperrors.Network("provider unavailable", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NETWORK_FAILURE", body["error"]["code"])
	assert.Equal(t, true, body["error"]["retryable"])
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Email string `json:"email" validate:"required,email"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"nope"}`))
	assert.True(t, apperrors.Is(DecodeJSON(req, &dst), apperrors.KindValidation))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"emma@example.com"}`))
	assert.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "emma@example.com", dst.Email)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSON(req, &dst))
}
