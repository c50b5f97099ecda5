package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrUserNotFound, ErrSessionNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrInternal is returned when the underlying store is unreachable,
	// throttled or otherwise failed. It is retryable by the caller and
	// maps to a 5xx response at the API boundary.
	ErrInternal = errors.New("store unavailable")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrDeviceLinkNotFound indicates that no user is linked to the requested device.
	ErrDeviceLinkNotFound = fmt.Errorf("%w: device link", ErrNotFound)

	// ErrSessionNotFound indicates that the requested quiz session does not
	// exist, which includes sessions already consumed by a submit.
	ErrSessionNotFound = fmt.Errorf("%w: quiz session", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError carries additional context for store-specific failures.
type StoreError struct {
	Entity    string // The entity type (e.g., "user", "quiz session")
	Operation string // The operation that failed (e.g., "get", "put", "query")
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %v", e.Operation, e.Entity, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed", e.Operation, e.Entity)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation and wrapped error.
func NewStoreError(entity, operation string, err error) *StoreError {
	return &StoreError{Entity: entity, Operation: operation, Err: err}
}
