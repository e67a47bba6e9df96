package domain

import "errors"

var (
	// ErrUserNotFound is returned when the store has no entry for a username.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when a password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrEmptyUsername is returned for an empty username key.
	ErrEmptyUsername = errors.New("username cannot be empty")
	// ErrUnknownDigest is returned for a digest name with no implementation.
	ErrUnknownDigest = errors.New("unknown digest")
)
