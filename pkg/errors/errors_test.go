package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "booking not found",
			},
			expected: "NOT_FOUND: booking not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "internal error",
				Err:     errors.New("database connection failed"),
			},
			expected: "INTERNAL_ERROR: internal error (caused by: database connection failed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Unavailable("hall registry", originalErr)

	if !errors.Is(appErr, originalErr) {
		t.Errorf("errors.Is should see through AppError to the cause")
	}
}

func TestInvalidTransition(t *testing.T) {
	err := InvalidTransition("booking", "rejected", "approved")

	if err.Code != CodeInvalidTransition {
		t.Errorf("expected code %s, got %s", CodeInvalidTransition, err.Code)
	}
	if err.HTTPStatus != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, err.HTTPStatus)
	}
	if err.Details["from"] != "rejected" || err.Details["to"] != "approved" {
		t.Errorf("expected transition details, got %v", err.Details)
	}
	if err.Retryable() {
		t.Error("invalid transition must not be retryable")
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		err       *AppError
		retryable bool
	}{
		{LockTimeout("lock wait expired"), true},
		{Unavailable("hall registry", errors.New("dial tcp: refused")), true},
		{Conflict("dates overlap"), false},
		{InvalidInput("check_out must be after check_in"), false},
		{NotFound("hall"), false},
	}

	for _, tt := range tests {
		if got := tt.err.Retryable(); got != tt.retryable {
			t.Errorf("%s: Retryable() = %v, want %v", tt.err.Code, got, tt.retryable)
		}
	}
}

func TestHasCode(t *testing.T) {
	conflict := Conflict("dates overlap")

	if !HasCode(conflict, CodeConflict) {
		t.Error("HasCode should match direct AppError")
	}
	wrapped := fmt.Errorf("approve failed: %w", conflict)
	if !HasCode(wrapped, CodeConflict) {
		t.Error("HasCode should match wrapped AppError")
	}
	if HasCode(errors.New("plain"), CodeConflict) {
		t.Error("HasCode should reject non-AppError")
	}
}

func TestAsAppError(t *testing.T) {
	plain := errors.New("boom")
	appErr := AsAppError(plain)

	if appErr.Code != CodeInternal {
		t.Errorf("expected fallback code %s, got %s", CodeInternal, appErr.Code)
	}
	if !errors.Is(appErr, plain) {
		t.Error("fallback should wrap the original error")
	}
}
