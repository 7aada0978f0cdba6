package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_CredentialScheme(t *testing.T) {
	t.Run("SchemeBcrypt", func(t *testing.T) {
		for _, hash := range []string{
			"$2a$10$abcdefghijklmnopqrstuv",
			"$2b$12$abcdefghijklmnopqrstuv",
			"$2y$08$abcdefghijklmnopqrstuv",
		} {
			user := &User{Email: "u@example.com", PasswordHash: hash}
			assert.Equal(t, SchemeBcrypt, user.CredentialScheme(), hash)
		}
	})

	t.Run("SchemeLegacySHA256", func(t *testing.T) {
		user := &User{
			Email:        "u@example.com",
			PasswordHash: "0123456789abcdef",
			PasswordSalt: "salt",
		}
		assert.Equal(t, SchemeLegacySHA256, user.CredentialScheme())
	})

	t.Run("SchemeNone_EmptyHash", func(t *testing.T) {
		user := &User{Email: "u@example.com", PasswordSalt: "salt"}
		assert.Equal(t, SchemeNone, user.CredentialScheme())
	})

	t.Run("SchemeNone_UnrecognizedHashWithoutSalt", func(t *testing.T) {
		user := &User{Email: "u@example.com", PasswordHash: "0123456789abcdef"}
		assert.Equal(t, SchemeNone, user.CredentialScheme())
	})

	t.Run("SchemeBcrypt_WinsOverSalt", func(t *testing.T) {
		// A bcrypt-shaped hash selects the current scheme even if a stale
		// legacy salt is still on the record.
		user := &User{
			Email:        "u@example.com",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
			PasswordSalt: "stale",
		}
		assert.Equal(t, SchemeBcrypt, user.CredentialScheme())
	})
}

func TestUser_EffectiveRole(t *testing.T) {
	assert.Equal(t, RoleCreator, (&User{Role: "creator"}).EffectiveRole())
	assert.Equal(t, RoleAdmin, (&User{Role: "admin"}).EffectiveRole())
	assert.Equal(t, RoleConsumer, (&User{}).EffectiveRole())
	assert.Equal(t, RoleConsumer, (&User{Role: "bogus"}).EffectiveRole())
}
