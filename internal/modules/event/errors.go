package event

import "errors"

var (
	ErrNotFound     = errors.New("event booking not found")
	ErrValidation   = errors.New("validation error")
	ErrInvalidState = errors.New("operation not permitted in current event state")
)
