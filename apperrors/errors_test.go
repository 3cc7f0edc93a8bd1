package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsAndStatus(t *testing.T) {
	tests := []struct {
		name      string
		err       *AppError
		kind      Kind
		status    int
		retryable bool
	}{
		{"validation", Validation("bad range", nil), KindValidation, http.StatusBadRequest, false},
		{"network", Network("provider down", errors.New("timeout")), KindNetwork, http.StatusServiceUnavailable, true},
		{"not found", NotFound("match", nil), KindNotFound, http.StatusNotFound, false},
		{"unauthorized", Unauthorized("no token", nil), KindUnauthorized, http.StatusUnauthorized, false},
		{"rate limited", RateLimited("slow down"), KindRateLimited, http.StatusTooManyRequests, true},
		{"internal", Internal("boom", nil), KindInternal, http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.retryable, tt.err.Retryable())
		})
	}
}

func TestAsAndIsThroughWrapping(t *testing.T) {
	base := NotFound("notification", nil)
	wrapped := fmt.Errorf("deleting: %w", base)

	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(wrapped, KindValidation))
	assert.Same(t, base, As(wrapped))

	plain := errors.New("plain")
	assert.Equal(t, KindInternal, As(plain).Kind)
	assert.ErrorIs(t, As(plain), plain)
}
