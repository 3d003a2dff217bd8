package domain

import "errors"

var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrValidation         = errors.New("validation failed")

	ErrItemNotFound      = errors.New("item not found")
	ErrForbidden         = errors.New("access forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
)
