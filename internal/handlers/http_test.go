package handlers_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/worthyderby/derbyslips/internal/errors"
	"github.com/worthyderby/derbyslips/internal/handlers"
)

func TestBadRequest(t *testing.T) {
	err := handlers.BadRequest("invalid input")

	if err.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", err.Status)
	}
	if err.Message != "invalid input" {
		t.Errorf("expected message 'invalid input', got %q", err.Message)
	}
	if err.Error() != "invalid input" {
		t.Errorf("Error() = %q, want the message", err.Error())
	}
}

func TestNotFound(t *testing.T) {
	err := handlers.NotFound("missing")

	if err.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", err.Status)
	}
	if err.Code != handlers.ErrCodeNotFound {
		t.Errorf("expected code NOT_FOUND, got %q", err.Code)
	}
}

func TestToAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", errors.NotFound("gone"), http.StatusNotFound, handlers.ErrCodeNotFound},
		{"validation", errors.Validation("bad vote"), http.StatusBadRequest, handlers.ErrCodeValidation},
		{"invalid input", errors.InvalidInput("bad document"), http.StatusBadRequest, handlers.ErrCodeMalformed},
		{"conflict", errors.Conflict("name taken"), http.StatusConflict, handlers.ErrCodeConflict},
		{"internal kind", errors.Internal(stderrors.New("boom")), http.StatusInternalServerError, handlers.ErrCodeInternalServer},
		{"plain error", stderrors.New("boom"), http.StatusInternalServerError, handlers.ErrCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := handlers.ToAPIError(tt.err)
			if apiErr.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", apiErr.Status, tt.wantStatus)
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", apiErr.Code, tt.wantCode)
			}
		})
	}
}

func TestToAPIError_WrappedError(t *testing.T) {
	wrapped := errors.Wrap(stderrors.New("syntax"), errors.ErrInvalidInput, "not a valid dataset document")

	apiErr := handlers.ToAPIError(wrapped)

	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.Status)
	}
	if apiErr.Message != "not a valid dataset document" {
		t.Errorf("message = %q, want wrapper message only", apiErr.Message)
	}
}
