package errors

import "net/http"

// Error code constants. Errors carry code + generic message only; backend
// logs hold the detailed context.

// Project / pipeline error codes.
const (
	CodeProjectNotFound    = "PROJECT_NOT_FOUND"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeTransitionConflict = "TRANSITION_CONFLICT"
	CodeTransitionFailed   = "TRANSITION_FAILED"
)

// Access error codes.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeScopeResolution = "SCOPE_RESOLUTION_FAILED"
)

// Analytics error codes.
const (
	CodeSectionUnavailable = "SECTION_UNAVAILABLE"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Validation error codes.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
)

// Notification error codes.
const (
	CodeNotificationNotFound = "NOTIFICATION_NOT_FOUND"
)

// Convenience constructors using predefined codes.

// ErrProjectNotFound creates the merged not-found/unauthorized error. The
// message is identical for absent and out-of-scope rows.
func ErrProjectNotFoundf(projectID string) *AppError {
	return &AppError{
		Code:       CodeProjectNotFound,
		Message:    "project not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// ErrInvalidStatusf creates the invalid-status caller error. The requested
// value is logged, never echoed.
func ErrInvalidStatusf(status string) *AppError {
	return &AppError{
		Code:       CodeInvalidStatus,
		Message:    "requested status is not a valid pipeline stage",
		HTTPStatus: http.StatusBadRequest,
	}
}

// ErrTransitionConflictf creates the concurrent-transition error. Safe to
// retry once with fresh state.
func ErrTransitionConflictf(projectID string) *AppError {
	return &AppError{
		Code:       CodeTransitionConflict,
		Message:    "project was modified concurrently, retry with fresh state",
		HTTPStatus: http.StatusConflict,
	}
}

// ErrUnauthenticatedf creates the no-resolvable-principal error.
func ErrUnauthenticatedf() *AppError {
	return &AppError{
		Code:       CodeUnauthenticated,
		Message:    "authentication required",
		HTTPStatus: http.StatusUnauthorized,
	}
}
