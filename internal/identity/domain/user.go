package domain

import (
	"regexp"
	"time"
)

// bcryptHashRe matches the signature prefix of bcrypt-format hashes. Presence
// of this prefix selects the current verification scheme.
var bcryptHashRe = regexp.MustCompile(`^\$2[aby]\$`)

// CredentialScheme tags how a stored credential must be verified. The scheme
// is resolved once from the record's shape, not re-sniffed per verification.
type CredentialScheme int

const (
	// SchemeNone means the record has no verifiable credential. Verification
	// always fails; this also covers records with an unrecognizable hash and
	// no salt ("cannot verify" maps to rejection for safety).
	SchemeNone CredentialScheme = iota
	// SchemeBcrypt is the current scheme; the hash embeds its own salt.
	SchemeBcrypt
	// SchemeLegacySHA256 is the pre-migration scheme: hex sha256("salt:password").
	SchemeLegacySHA256
)

// User is the account record held by the user store, keyed by lowercase email.
// The identifier is immutable once created.
type User struct {
	// Email is the account's natural key.
	Email string `bson:"_id"`
	// Role is the authoritative role; empty defaults to consumer on lookup.
	Role string `bson:"role"`
	// PasswordHash is empty for auto-provisioned records.
	PasswordHash string `bson:"passwordHash,omitempty"`
	// PasswordSalt is only set on legacy records.
	PasswordSalt string `bson:"passwordSalt,omitempty"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

// CredentialScheme resolves the verification scheme from the stored record's
// shape, making the supported schemes and their selection rule auditable here.
func (u *User) CredentialScheme() CredentialScheme {
	switch {
	case u.PasswordHash == "":
		return SchemeNone
	case bcryptHashRe.MatchString(u.PasswordHash):
		return SchemeBcrypt
	case u.PasswordSalt != "":
		return SchemeLegacySHA256
	default:
		return SchemeNone
	}
}

// EffectiveRole returns the stored role, defaulting to consumer when the
// record has none set.
func (u *User) EffectiveRole() Role {
	if role, ok := ParseRole(u.Role); ok {
		return role
	}
	return RoleConsumer
}
