package ndarray

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrStridesLength   = errors.New("strides length does not match shape rank")
	ErrNegativeDim     = errors.New("negative dimension")
	ErrNegativeOffset  = errors.New("negative offset")
	ErrOutOfBounds     = errors.New("view addresses elements outside its buffer")
	ErrMissingAccessor = errors.New("accessor required when buffer and element types differ")
	ErrBroadcast       = errors.New("shapes not compatible for broadcasting")
	ErrInvalidAxis     = errors.New("invalid axis")
	ErrDataLength      = errors.New("data length does not match shape")
)

// ValidationError provides detailed information about a rejected view descriptor.
type ValidationError struct {
	Op      string // Constructor or derivation that failed (e.g., "new", "slice")
	Err     error  // One of the sentinel errors above
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("ndarray: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("ndarray: %s: %v: %s", e.Op, e.Err, e.Details)
}

// Unwrap returns the sentinel error so errors.Is works.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(op string, err error, format string, args ...any) *ValidationError {
	return &ValidationError{Op: op, Err: err, Details: fmt.Sprintf(format, args...)}
}
