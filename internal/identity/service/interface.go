package service

import (
	"net/http"
	"time"

	"github.com/allisson/vidshare/internal/identity/domain"
)

// TokenPayload is the verified content of an identity token.
type TokenPayload struct {
	// Subject is the account identifier (email) the token was issued for.
	Subject string
	// Role is the raw role claim; callers map it through domain.ParseRole.
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and validates signed, time-limited identity tokens.
// Verify is the single trust boundary for bearer-token authentication: no
// other code parses or trusts the raw token string.
type TokenService interface {
	// Issue signs a token for subject with the configured lifetime.
	// Fails when subject or role is empty.
	Issue(subject string, role domain.Role) (string, error)

	// IssueWithTTL signs a token with an explicit lifetime.
	IssueWithTTL(subject string, role domain.Role, ttl time.Duration) (string, error)

	// Verify returns the token payload, or nil on any failure: malformed
	// token, signature mismatch, wrong algorithm, expiry, or missing subject.
	// The failure modes are deliberately indistinguishable to the caller.
	Verify(token string) *TokenPayload
}

// PasswordService hashes and verifies account passwords across the current
// and legacy hashing schemes.
type PasswordService interface {
	// Hash digests a password under the current scheme. Fails fast on an
	// empty password.
	Hash(password string) (string, error)

	// Verify checks a plaintext password against a stored record. It never
	// errors: records whose credentials cannot be verified are rejected.
	Verify(password string, user *domain.User) bool
}

// PrincipalResolver produces a Principal from an inbound request, or nil when
// no identity source yields an identifier.
type PrincipalResolver interface {
	Resolve(r *http.Request) *domain.Principal
}

// ResolverStrategy is one identity source tried by the resolver.
type ResolverStrategy interface {
	Resolve(r *http.Request) *domain.Principal
}
