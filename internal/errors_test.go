package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "contact", Reason: "must not be empty"}

	msg := err.Error()
	if !strings.Contains(msg, "validation error") {
		t.Errorf("ValidationError.Error() should contain 'validation error', got: %q", msg)
	}
	if !strings.Contains(msg, "contact") {
		t.Errorf("ValidationError.Error() should contain field, got: %q", msg)
	}
}

func TestStateErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", &NotFoundError{ID: "1000"}, "resource not found: 1000"},
		{"already taken", &AlreadyTakenError{ID: "1001"}, "resource already taken: 1001"},
		{"already available", &AlreadyAvailableError{ID: "1002"}, "resource already available: 1002"},
		{"auth required", &AuthRequiredError{Op: "borrow"}, "login required: borrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaymentFailedError(t *testing.T) {
	err := &PaymentFailedError{ResourceID: "1000", Amount: 50}

	msg := err.Error()
	if !strings.Contains(msg, "payment failed") {
		t.Errorf("PaymentFailedError.Error() should contain 'payment failed', got: %q", msg)
	}
	if !strings.Contains(msg, "1000") {
		t.Errorf("PaymentFailedError.Error() should contain resource id, got: %q", msg)
	}
}

func TestStorageError(t *testing.T) {
	originalErr := errors.New("permission denied")
	err := &StorageError{
		Path: "/test/path",
		Op:   "open",
		Err:  originalErr,
	}

	msg := err.Error()
	if !strings.Contains(msg, "storage error") {
		t.Errorf("StorageError.Error() should contain 'storage error', got: %q", msg)
	}
	if !strings.Contains(msg, "/test/path") {
		t.Errorf("StorageError.Error() should contain path, got: %q", msg)
	}

	if !errors.Is(err, originalErr) {
		t.Error("StorageError.Unwrap() should return original error")
	}
}
