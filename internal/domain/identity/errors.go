package identity

import "errors"

var (
	ErrNotFound           = errors.New("doctor not found")
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters with uppercase, lowercase and a digit")
)
