package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConstructors(t *testing.T) {
	underlying := fmt.Errorf("underlying")

	testCases := []struct {
		name         string
		constructor  func() *Error
		expectedKind Kind
		checkMessage string
		hasErr       bool
	}{
		{"NotFound", func() *Error { return NotFound("event not found") }, ErrNotFound, "event not found", false},
		{"NotFoundf", func() *Error { return NotFoundf("event %q not found", "evt-1") }, ErrNotFound, `event "evt-1" not found`, false},
		{"Validation", func() *Error { return Validation("car not on roster") }, ErrValidation, "car not on roster", false},
		{"Validationf", func() *Error { return Validationf("car %d is not on the roster", 99) }, ErrValidation, "car 99 is not on the roster", false},
		{"Conflict", func() *Error { return Conflict("category exists") }, ErrConflict, "category exists", false},
		{"Conflictf", func() *Error { return Conflictf("category %q already exists", "Speed") }, ErrConflict, `category "Speed" already exists`, false},
		{"InvalidInput", func() *Error { return InvalidInput("no events object") }, ErrInvalidInput, "no events object", false},
		{"InvalidInputf", func() *Error { return InvalidInputf("bad document: %d bytes", 7) }, ErrInvalidInput, "bad document: 7 bytes", false},
		{"Internal", func() *Error { return Internal(underlying) }, ErrInternal, "internal error", true},
		{"Internalf", func() *Error { return Internalf("storage failed: %s", "locked") }, ErrInternal, "storage failed: locked", false},
		{"Wrap", func() *Error { return Wrap(underlying, ErrInvalidInput, "not a valid dataset document") }, ErrInvalidInput, "not a valid dataset document", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.constructor()

			if err.Kind != tc.expectedKind {
				t.Errorf("expected Kind %d, got %d", tc.expectedKind, err.Kind)
			}
			if err.Message != tc.checkMessage {
				t.Errorf("expected Message %q, got %q", tc.checkMessage, err.Message)
			}
			if tc.hasErr && err.Err == nil {
				t.Error("expected Err to be non-nil")
			}
			if !tc.hasErr && err.Err != nil {
				t.Errorf("expected Err to be nil, got %v", err.Err)
			}
		})
	}
}

func TestErrorMethod(t *testing.T) {
	plain := Validation("duplicate vote")
	if plain.Error() != "duplicate vote" {
		t.Errorf("Error() = %q, want message alone", plain.Error())
	}

	wrapped := Wrap(fmt.Errorf("unexpected end of JSON input"), ErrInvalidInput, "not a valid dataset document")
	want := "not a valid dataset document: unexpected end of JSON input"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestUnwrap(t *testing.T) {
	underlying := fmt.Errorf("original")
	err := Wrap(underlying, ErrInternal, "wrapper")

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want underlying", err.Unwrap())
	}
	if NotFound("x").Unwrap() != nil {
		t.Error("Unwrap() of unwrapped error should be nil")
	}
}

func TestErrorsAs(t *testing.T) {
	err := NotFoundf("event %q not found", "evt-1")
	wrapped := fmt.Errorf("handler: %w", err)

	var appErr *Error
	if !errors.As(wrapped, &appErr) {
		t.Fatal("expected errors.As to extract *Error from chain")
	}
	if appErr.Kind != ErrNotFound {
		t.Errorf("Kind = %d, want ErrNotFound", appErr.Kind)
	}

	var fromPlain *Error
	if errors.As(fmt.Errorf("regular"), &fromPlain) {
		t.Error("expected errors.As to return false for plain error")
	}
}

func TestErrorsIs_FindsSentinelThroughWrap(t *testing.T) {
	sentinel := fmt.Errorf("sentinel")
	err := Wrap(sentinel, ErrInternal, "context")

	if !errors.Is(err, sentinel) {
		t.Error("expected errors.Is to find sentinel in chain")
	}
}
