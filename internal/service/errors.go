package service

import "errors"

// Custom errors
var (
	// ErrInvalidCredentials covers every login failure: unknown email, wrong
	// password, even a store error. Callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound covers a missing row and, for flights, a row owned by
	// another user. The two must stay indistinguishable.
	ErrNotFound = errors.New("not found")
)
