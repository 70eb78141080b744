package service

import "errors"

// Sentinel errors shared by all services. Handlers map them to HTTP statuses.
var (
	// ErrNotFound is returned when an id-parameterized lookup misses.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned on duplicate unique fields, e.g. email.
	ErrConflict = errors.New("already exists")

	// ErrAlreadyValidated is returned when validating a report twice.
	// Re-validation is rejected rather than treated as a no-op, so points
	// and the snapshot counter can never be applied twice.
	ErrAlreadyValidated = errors.New("report already validated")

	// ErrInvalidCredentials is returned on login with a wrong email/password
	// pair or an inactive account.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
