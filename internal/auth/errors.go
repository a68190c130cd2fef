package auth

import "errors"

var (
	ErrDuplicateUser      = errors.New("user already exists with this email")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrLocked             = errors.New("complete your profile to unlock this feature")
	ErrNoSession          = errors.New("not logged in")
	ErrInvalidInput       = errors.New("name and email are required")
)
