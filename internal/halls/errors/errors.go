package errors

import "errors"

var (
	ErrNotFound = errors.New("hall not found")

	ErrInvalidID = errors.New("invalid hall ID format")
)
