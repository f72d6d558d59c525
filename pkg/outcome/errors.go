package outcome

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is raised when a factory is asked to build an outcome
	// that breaks its invariants.
	ErrInvalidState = errors.New("outcome: invalid state")
	// ErrInvalidAccess is raised when the payload of a failed outcome is read.
	ErrInvalidAccess = errors.New("outcome: invalid access")
)

// FailureError is the error form of a failed outcome's message.
type FailureError struct {
	Message string
}

func (e *FailureError) Error() string {
	return e.Message
}

func invalidState(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidState}, args...)...)
}

func invalidAccess(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidAccess, err)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
