package domain

import "strings"

// Role is the closed set of access levels a principal can hold.
type Role string

// Supported roles. Admin satisfies every role check.
const (
	RoleCreator  Role = "creator"
	RoleConsumer Role = "consumer"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a raw string to a Role. Unrecognized values (including the
// empty string) return ok=false; they are never passed through.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleCreator:
		return RoleCreator, true
	case RoleConsumer:
		return RoleConsumer, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// ParseAssignableRole is ParseRole restricted to the roles a user may hold by
// registration or admin assignment. Admin is bootstrapped out of band, never
// through these paths.
func ParseAssignableRole(raw string) (Role, bool) {
	role, ok := ParseRole(raw)
	if !ok || role == RoleAdmin {
		return "", false
	}
	return role, true
}

// String returns the role's wire representation.
func (r Role) String() string {
	return string(r)
}

// Satisfies reports whether a principal holding r passes a check for required.
// Admin is a universal override.
func (r Role) Satisfies(required Role) bool {
	return r == RoleAdmin || r == required
}

// SatisfiesAny reports whether r passes a membership check against required.
func (r Role) SatisfiesAny(required []Role) bool {
	if r == RoleAdmin {
		return true
	}
	for _, want := range required {
		if r == want {
			return true
		}
	}
	return false
}
