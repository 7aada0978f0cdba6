package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/allisson/vidshare/internal/config"
	apperrors "github.com/allisson/vidshare/internal/errors"
	"github.com/allisson/vidshare/internal/identity/domain"
)

// passwordService implements PasswordService using bcrypt for the current
// scheme and sha256(salt:password) for legacy records.
type passwordService struct {
	cost int
}

// NewPasswordService creates a PasswordService with the configured bcrypt
// cost factor. The config layer clamps the cost to the supported range.
func NewPasswordService(cfg *config.Config) PasswordService {
	return &passwordService{cost: cfg.BcryptCost}
}

// Hash digests a password with bcrypt. The resulting hash embeds its own salt.
func (s *passwordService) Hash(password string) (string, error) {
	if password == "" {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// Verify checks a plaintext password against the record's stored credential.
// The verification scheme is resolved once from the record's shape; records
// without a verifiable credential are rejected, never errored on.
func (s *passwordService) Verify(password string, user *domain.User) bool {
	if password == "" || user == nil {
		return false
	}

	switch user.CredentialScheme() {
	case domain.SchemeBcrypt:
		return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
	case domain.SchemeLegacySHA256:
		digest := sha256.Sum256(fmt.Appendf(nil, "%s:%s", user.PasswordSalt, password))
		legacy := hex.EncodeToString(digest[:])
		return subtle.ConstantTimeCompare([]byte(legacy), []byte(user.PasswordHash)) == 1
	default:
		return false
	}
}
