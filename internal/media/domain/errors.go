package domain

import "github.com/allisson/vidshare/internal/errors"

// Domain-specific errors for media operations.
var (
	// ErrVideoNotFound indicates the referenced video document does not exist.
	ErrVideoNotFound = errors.Wrap(errors.ErrNotFound, "video not found")
)
