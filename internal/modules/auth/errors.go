package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("account already exists")
	ErrNotFound           = errors.New("account not found")
)
