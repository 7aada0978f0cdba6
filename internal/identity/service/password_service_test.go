package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/vidshare/internal/config"
	"github.com/allisson/vidshare/internal/identity/domain"
)

func testPasswordService() PasswordService {
	// Low cost keeps the test fast while exercising the real algorithm.
	return NewPasswordService(&config.Config{BcryptCost: 8})
}

func TestPasswordService_Hash(t *testing.T) {
	service := testPasswordService()

	t.Run("Success_HashAndVerify", func(t *testing.T) {
		hash, err := service.Hash("correct horse battery 1")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$2"))

		user := &domain.User{Email: "user@example.com", PasswordHash: hash}
		assert.Equal(t, domain.SchemeBcrypt, user.CredentialScheme())
		assert.True(t, service.Verify("correct horse battery 1", user))
		assert.False(t, service.Verify("wrong password", user))
	})

	t.Run("Error_EmptyPassword", func(t *testing.T) {
		_, err := service.Hash("")
		assert.Error(t, err)
	})
}

func TestPasswordService_Verify(t *testing.T) {
	service := testPasswordService()

	t.Run("Success_LegacyScheme", func(t *testing.T) {
		digest := sha256.Sum256([]byte(fmt.Sprintf("%s:%s", "s1", "p4ssword1")))
		user := &domain.User{
			Email:        "legacy@example.com",
			PasswordHash: hex.EncodeToString(digest[:]),
			PasswordSalt: "s1",
		}

		assert.Equal(t, domain.SchemeLegacySHA256, user.CredentialScheme())
		assert.True(t, service.Verify("p4ssword1", user))
		assert.False(t, service.Verify("other", user))
	})

	t.Run("Failure_NoCredential", func(t *testing.T) {
		user := &domain.User{Email: "bare@example.com"}
		assert.Equal(t, domain.SchemeNone, user.CredentialScheme())
		assert.False(t, service.Verify("anything", user))
	})

	t.Run("Failure_UnrecognizedHashWithoutSalt", func(t *testing.T) {
		// A hash that is neither bcrypt-shaped nor paired with a salt has no
		// scheme; verification is rejected instead of guessed.
		user := &domain.User{Email: "odd@example.com", PasswordHash: "deadbeef"}
		assert.Equal(t, domain.SchemeNone, user.CredentialScheme())
		assert.False(t, service.Verify("anything", user))
	})

	t.Run("Failure_EmptyPasswordOrNilUser", func(t *testing.T) {
		hash, err := service.Hash("correct horse battery 1")
		require.NoError(t, err)
		user := &domain.User{Email: "user@example.com", PasswordHash: hash}

		assert.False(t, service.Verify("", user))
		assert.False(t, service.Verify("correct horse battery 1", nil))
	})
}
