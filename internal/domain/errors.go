package domain

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist or is
	// not visible to the caller.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden is returned when a caller tries to mutate a blog they do
	// not own.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials covers both unknown-email and wrong-password
	// login failures so the API does not reveal which one happened.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateTitle = errors.New("title already in use")
)
