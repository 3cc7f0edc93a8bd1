package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind groups errors by how the view should react to them
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNetwork      Kind = "network"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindRateLimited  Kind = "rate_limited"
	KindInternal     Kind = "internal"
)

type AppError struct {
	Code    string
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the same request may succeed later
func (e *AppError) Retryable() bool {
	return e.Kind == KindNetwork || e.Kind == KindRateLimited
}

func Validation(message string, err error) *AppError {
	return &AppError{Code: "VALIDATION_FAILED", Kind: KindValidation, Message: message, Status: http.StatusBadRequest, Err: err}
}

func Network(message string, err error) *AppError {
	return &AppError{Code: "NETWORK_FAILURE", Kind: KindNetwork, Message: message, Status: http.StatusServiceUnavailable, Err: err}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{Code: "NOT_FOUND", Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource), Status: http.StatusNotFound, Err: err}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{Code: "UNAUTHORIZED", Kind: KindUnauthorized, Message: message, Status: http.StatusUnauthorized, Err: err}
}

func RateLimited(message string) *AppError {
	return &AppError{Code: "TOO_MANY_REQUESTS", Kind: KindRateLimited, Message: message, Status: http.StatusTooManyRequests}
}

func Internal(message string, err error) *AppError {
	return &AppError{Code: "INTERNAL_ERROR", Kind: KindInternal, Message: message, Status: http.StatusInternalServerError, Err: err}
}

// As extracts an *AppError from err. Anything else is reported as internal.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("unexpected error", err)
}

// Is reports whether err is an AppError of the given kind
func Is(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
