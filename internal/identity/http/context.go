// Package http provides the access-guard middlewares and HTTP handlers for
// the identity surface.
package http

import (
	"context"

	"github.com/allisson/vidshare/internal/identity/domain"
)

// principalKey is a context key type for storing resolved principals.
type principalKey struct{}

// WithPrincipal stores a role-complete principal in the context. Called by
// the authentication middleware after resolution succeeds.
func WithPrincipal(ctx context.Context, principal *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the resolved principal from the context.
// Returns (principal, true) when present, or (nil, false) when no principal
// was set (the guard middleware did not run or short-circuited).
func GetPrincipal(ctx context.Context) (*domain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*domain.Principal)
	return principal, ok
}
