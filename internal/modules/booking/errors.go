package booking

import "errors"

var (
	ErrNotFound     = errors.New("booking not found")
	ErrRoomNotFound = errors.New("room not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("room already booked for overlapping dates")
	ErrInvalidState = errors.New("operation not permitted in current booking state")
)
