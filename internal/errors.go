package internal

import "fmt"

// ValidationError represents malformed input to a ledger operation
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
}

// NotFoundError represents an unknown resource id
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.ID)
}

// AlreadyTakenError represents a borrow attempt on a taken resource
type AlreadyTakenError struct {
	ID string
}

func (e *AlreadyTakenError) Error() string {
	return fmt.Sprintf("resource already taken: %s", e.ID)
}

// AlreadyAvailableError represents a return attempt on an available resource
type AlreadyAvailableError struct {
	ID string
}

func (e *AlreadyAvailableError) Error() string {
	return fmt.Sprintf("resource already available: %s", e.ID)
}

// AuthRequiredError represents an identity-gated operation invoked without a login
type AuthRequiredError struct {
	Op string // "borrow", "chat"
}

func (e *AuthRequiredError) Error() string {
	return fmt.Sprintf("login required: %s", e.Op)
}

// PaymentFailedError represents a declined charge during borrow
type PaymentFailedError struct {
	ResourceID string
	Amount     float64
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("payment failed for resource %s (amount %.2f)", e.ResourceID, e.Amount)
}

// StorageError represents errors accessing the durable store files
type StorageError struct {
	Path string
	Op   string // "open", "read", "write"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
