package core

import (
	"errors"
	"fmt"
)

var (
	// ErrBookNotFound matches any NotFoundError via errors.Is.
	ErrBookNotFound = errors.New("book not found")

	// ErrRouteNotFound is answered for unmatched routes. It is distinct from
	// ErrBookNotFound so that a missing page and a missing record stay apart.
	ErrRouteNotFound = errors.New("page not found")

	// ErrNilStore is returned by NewService when no store is given.
	ErrNilStore = errors.New("nil store")
)

// DecodeError reports an inbound body that does not match the BookRequest shape.
type DecodeError struct {
	Field  string // Form key; empty when the body itself could not be parsed
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return "invalid form submission: " + e.Reason
	}
	return fmt.Sprintf("invalid form submission: %s %s", e.Field, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError reports a BookRequest field that violates a constraint.
type ValidationError struct {
	Field  string // Form key, e.g. "name"
	Value  string // The rejected value
	Reason string // Human-readable bound that was violated
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// NotFoundError reports a lookup by id that matched zero rows.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("book %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrBookNotFound
}

// PersistenceError wraps any store-level failure.
type PersistenceError struct {
	Op  string // Store operation, e.g. "create"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// FatalStartupError reports a failure to build the connection pool.
// The process must not serve traffic after receiving one.
type FatalStartupError struct {
	Stage string
	Err   error
}

func (e *FatalStartupError) Error() string {
	return fmt.Sprintf("startup failed (%s): %v", e.Stage, e.Err)
}

func (e *FatalStartupError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err was caused by the submitted form rather
// than by the store.
func IsInputError(err error) bool {
	var de *DecodeError
	var ve *ValidationError
	return errors.As(err, &de) || errors.As(err, &ve)
}
