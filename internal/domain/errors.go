package domain

import "errors"

var (
	// ErrValidation indicates malformed input, rejected before touching storage.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness violation on create or update.
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials covers both unknown username and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates a malformed, tampered or expired bearer token.
	ErrInvalidToken = errors.New("invalid token")
)
