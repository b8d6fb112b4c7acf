package database

import (
	"errors"
	"fmt"
)

// StoreError represents a transport, permission or availability failure from
// the document store. Callers distinguish it from the expected "document does
// not exist" outcome, which is reported as domain.ErrNotFound instead.
type StoreError struct {
	// Op names the gateway operation that failed, e.g. "list" or "get".
	Op string

	// Collection is the collection the operation targeted.
	Collection string

	// Err is the underlying error returned by the database driver.
	Err error
}

// NewStoreError creates a new StoreError for the given operation.
func NewStoreError(op, collection string, err error) *StoreError {
	return &StoreError{Op: op, Collection: collection, Err: err}
}

// Error returns the error message.
func (e *StoreError) Error() string {
	return fmt.Sprintf("document store %s %q: %v", e.Op, e.Collection, e.Err)
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err is (or wraps) a StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
