package las

import (
	"errors"
	"fmt"
)

// Sentinel errors for document accessors.
var (
	// ErrSectionAbsent indicates a required section marker is missing.
	ErrSectionAbsent = errors.New("section absent")

	// ErrPropertyNotFound indicates a property table or property has no
	// parsable content.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrColumnNotFound indicates a requested curve name is not in the
	// header list.
	ErrColumnNotFound = errors.New("column not found")

	// ErrAcquisition indicates the raw document text could not be
	// obtained from its source.
	ErrAcquisition = errors.New("document acquisition failed")

	// ErrMetadata indicates the version section carries fewer than the
	// two property lines (version, wrap) it must declare.
	ErrMetadata = errors.New("version section incomplete")
)

// Error is the single top-level error type surfaced by the facade. It
// carries the failing operation and a human-readable cause chain; the
// underlying kind stays reachable through Unwrap for errors.Is checks.
type Error struct {
	Op     string // Accessor that failed ("header", "data", "column"...)
	Detail string // Subject of the failure (section kind, curve name...)
	Err    error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("las %s %q: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("las %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, detail string, err error) *Error {
	return &Error{Op: op, Detail: detail, Err: err}
}
