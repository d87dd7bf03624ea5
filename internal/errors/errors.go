// Package errors provides custom error types for the SpendSense health
// score API. All service-layer errors should use AppError to ensure
// consistent, secure error responses that never leak internal details
// to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden    = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Health score errors.
var (
	// ErrInvalidSnapshot covers signal snapshots with missing fields. The
	// calculator never substitutes defaults for absent signals; the
	// aggregation service must send complete rows.
	ErrInvalidSnapshot = &AppError{Code: "INVALID_SNAPSHOT", Message: "Signal snapshot is missing required fields", StatusCode: http.StatusBadRequest}
	ErrScoreNotFound   = &AppError{Code: "SCORE_NOT_FOUND", Message: "No health score has been computed for this user yet", StatusCode: http.StatusNotFound}
	// ErrStorageFailure distinguishes persistence faults from compute
	// faults so callers retry only the store step, never the calculation.
	ErrStorageFailure = &AppError{Code: "STORAGE_FAILURE", Message: "Failed to persist health score record", StatusCode: http.StatusServiceUnavailable}
)
