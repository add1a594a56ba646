package room

import "errors"

var (
	ErrNotFound     = errors.New("room not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("room number already exists")
	ErrInvalidState = errors.New("room attributes are frozen while bookings reference it")
)
