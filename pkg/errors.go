// Package pkg holds small utilities shared across the project.
// This file defines the domain-level error sentinels.
//
// Services return these (usually wrapped) and the handler layer maps them
// to a user-facing outcome with errors.Is.
package pkg

import "errors"

var (
	// ErrValidation marks a rejected form submission.
	ErrValidation = errors.New("validation failed")

	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// ValidationError carries the human-readable reason a submission was
// rejected. Error() is the bare reason so handlers can flash it verbatim;
// errors.Is(err, ErrValidation) still matches via Is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Validation builds a ValidationError.
func Validation(reason string) error {
	return &ValidationError{Reason: reason}
}
