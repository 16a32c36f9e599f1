package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsKind(t *testing.T) {
	err := NewValidationMessage("Add at least one item")
	if !IsKind(err, ValidationFailed) {
		t.Error("ValidationFailed kind not detected")
	}
	if IsKind(err, NetworkFailure) {
		t.Error("wrong kind matched")
	}

	// Kind detection survives wrapping.
	wrapped := fmt.Errorf("submit: %w", err)
	if !IsKind(wrapped, ValidationFailed) {
		t.Error("wrapped kind not detected")
	}

	if IsKind(errors.New("plain"), ValidationFailed) {
		t.Error("plain error matched a kind")
	}
}

func TestGetAppError(t *testing.T) {
	t.Run("passes app errors through", func(t *testing.T) {
		err := NewNotFoundError("Bill")
		got := GetAppError(fmt.Errorf("details: %w", err))
		if got.Kind != NotFound {
			t.Errorf("expected NotFound, got %s", got.Kind)
		}
		if got.Message != "Bill not found" {
			t.Errorf("unexpected message: %q", got.Message)
		}
	})

	t.Run("treats unknown errors as network failures", func(t *testing.T) {
		got := GetAppError(errors.New("dial tcp: connection refused"))
		if got.Kind != NetworkFailure {
			t.Errorf("expected NetworkFailure, got %s", got.Kind)
		}
	})
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewNetworkFailure(cause)
	if !errors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap")
	}
}

func TestFieldMessage(t *testing.T) {
	err := NewValidationError(
		FieldError{Field: "name", Message: "Name is required"},
		FieldError{Field: "taxPercent", Message: "Tax percent must be between 0 and 100"},
	)

	msg, ok := err.FieldMessage("taxPercent")
	if !ok || msg != "Tax percent must be between 0 and 100" {
		t.Errorf("FieldMessage(taxPercent) = (%q, %v)", msg, ok)
	}
	if _, ok := err.FieldMessage("missing"); ok {
		t.Error("unknown field reported a message")
	}
}
