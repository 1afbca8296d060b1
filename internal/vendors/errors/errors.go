package errors

import "errors"

var (
	ErrNotFound = errors.New("vendor not found")

	ErrInvalidID = errors.New("invalid vendor ID format")
)
