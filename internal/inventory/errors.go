package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound is returned when a referenced item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrCategoryNotFound is returned when a referenced compartment does not exist.
	ErrCategoryNotFound = errors.New("compartment not found")

	// ErrInvalidInput is returned for malformed or out-of-range request fields.
	// Wrapped errors carry the specific detail.
	ErrInvalidInput = errors.New("invalid input")
)

// CapacityScope identifies which ceiling a receive request ran into.
type CapacityScope string

const (
	CapacityScopeItem        CapacityScope = "item"
	CapacityScopeCompartment CapacityScope = "compartment"
)

// InsufficientStockError is returned when a send requests more units than the
// item currently holds. Available carries the pre-operation stock so the
// caller can adjust the request.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough quantity, available: %d", e.Available)
}

// CapacityExceededError is returned when a receive requests more units than
// the item or its compartment has room for.
type CapacityExceededError struct {
	Scope     CapacityScope
	Available int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s capacity exceeded, available: %d", e.Scope, e.Available)
}

// StorageError wraps a persistence failure. The enclosing transaction has
// been rolled back by the time it reaches the caller; retrying is the
// caller's decision.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: storage failure: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageFailure(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
