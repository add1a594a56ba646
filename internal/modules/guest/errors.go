package guest

import "errors"

var (
	ErrNotFound   = errors.New("guest not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("guest with this phone already exists")
)
