package domain

import "github.com/allisson/vidshare/internal/errors"

// Domain-specific errors for identity operations.
var (
	// ErrAccountNotFound indicates no user record exists for the identifier.
	ErrAccountNotFound = errors.Wrap(errors.ErrNotFound, "account not found")

	// ErrInvalidCredentials indicates the presented password did not verify.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrEmailAlreadyRegistered indicates a record with the same identifier exists.
	ErrEmailAlreadyRegistered = errors.Wrap(errors.ErrConflict, "email already registered")

	// ErrUserLookupFailed indicates the user store could not be consulted.
	ErrUserLookupFailed = errors.Wrap(errors.ErrDependency, "user lookup failed")
)
