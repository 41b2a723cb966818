package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without wrapped error",
			err:  New(CodeProjectNotFound, "project not found", http.StatusNotFound),
			want: "PROJECT_NOT_FOUND: project not found",
		},
		{
			name: "with wrapped error",
			err:  Wrap(fmt.Errorf("db error"), "DB_ERROR", "database failure", http.StatusInternalServerError),
			want: "DB_ERROR: database failure: db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap(inner, "CODE", "msg", 500)

	if !errors.Is(appErr, inner) {
		t.Error("errors.Is should match inner error")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NotFound(CodeProjectNotFound, "project not found")
	wrapped := fmt.Errorf("wrapped: %w", appErr)

	got, ok := IsAppError(wrapped)
	if !ok {
		t.Fatal("IsAppError should return true for wrapped AppError")
	}
	if got.Code != CodeProjectNotFound {
		t.Errorf("Code = %q, want %q", got.Code, CodeProjectNotFound)
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
	}{
		{"NotFound", NotFound("NF", "not found"), http.StatusNotFound},
		{"BadRequest", BadRequest("BR", "bad request"), http.StatusBadRequest},
		{"Unauthorized", Unauthorized("UA", "unauthorized"), http.StatusUnauthorized},
		{"Forbidden", Forbidden("FB", "forbidden"), http.StatusForbidden},
		{"Conflict", Conflict("CF", "conflict"), http.StatusConflict},
		{"Internal", Internal("IE", "internal"), http.StatusInternalServerError},
		{"Unavailable", Unavailable("UN", "unavailable"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", tt.err.HTTPStatus, tt.wantStatus)
			}
		})
	}
}

func TestPredefinedConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"project not found", ErrProjectNotFoundf("p-1"), CodeProjectNotFound, http.StatusNotFound},
		{"invalid status", ErrInvalidStatusf("launching"), CodeInvalidStatus, http.StatusBadRequest},
		{"transition conflict", ErrTransitionConflictf("p-1"), CodeTransitionConflict, http.StatusConflict},
		{"unauthenticated", ErrUnauthenticatedf(), CodeUnauthenticated, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.wantCode)
			}
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", tt.err.HTTPStatus, tt.wantStatus)
			}
		})
	}
}
