package service

import "errors"

// Service-level failure classes. Handlers map these onto HTTP outcomes;
// anything not listed here is an internal error.
var (
	ErrMissingCredentials = errors.New("missing_credentials")
	ErrInvalidUsername    = errors.New("invalid_username")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmptyMessage       = errors.New("empty_message")
)
