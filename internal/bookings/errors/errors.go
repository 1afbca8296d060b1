package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	// ErrLockHeld is the repository-level signal that another request
	// holds the hall's advisory lock.
	ErrLockHeld = errors.New("hall lock already held")
)
