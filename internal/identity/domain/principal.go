// Package domain defines the identity domain entities: principals, roles and
// user records.
package domain

// Provider identifies which resolution path produced a principal. Diagnostic
// only; trust decisions rely solely on strategy priority order.
type Provider string

// Resolution providers, in priority order.
const (
	ProviderToken    Provider = "token"
	ProviderPlatform Provider = "platform"
	ProviderDev      Provider = "dev"
)

// Principal is the resolved caller identity for a single request. It is
// created fresh per request, never persisted, and discarded at response time.
type Principal struct {
	// ID is the lowercase-normalized account identifier (the email address).
	ID string
	// Role is empty until the source supplies one or the role authority
	// fills it from the user store.
	Role Role
	// Provider records the resolution path that produced this principal.
	Provider Provider
}

// HasRole reports whether the principal's role has been resolved.
func (p *Principal) HasRole() bool {
	return p.Role != ""
}
