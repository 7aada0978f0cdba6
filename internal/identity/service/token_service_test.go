package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/vidshare/internal/config"
	"github.com/allisson/vidshare/internal/identity/domain"
)

func testTokenConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret-key",
		JWTExpiration: 2 * time.Hour,
	}
}

func TestNewTokenService(t *testing.T) {
	t.Run("Success_WithSecret", func(t *testing.T) {
		service, err := NewTokenService(testTokenConfig())
		require.NoError(t, err)
		assert.NotNil(t, service)
	})

	t.Run("Error_MissingSecret", func(t *testing.T) {
		service, err := NewTokenService(&config.Config{})
		require.Error(t, err)
		assert.Nil(t, service)
	})
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	service, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	t.Run("Success_RoundTrip", func(t *testing.T) {
		token, err := service.Issue("user@example.com", domain.RoleCreator)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		payload := service.Verify(token)
		require.NotNil(t, payload)
		assert.Equal(t, "user@example.com", payload.Subject)
		assert.Equal(t, "creator", payload.Role)
		assert.True(t, payload.ExpiresAt.After(time.Now()))
	})

	t.Run("Success_SubjectLowercased", func(t *testing.T) {
		token, err := service.Issue("User@Example.COM", domain.RoleConsumer)
		require.NoError(t, err)

		payload := service.Verify(token)
		require.NotNil(t, payload)
		assert.Equal(t, "user@example.com", payload.Subject)
	})

	t.Run("Error_EmptySubject", func(t *testing.T) {
		_, err := service.Issue("", domain.RoleCreator)
		assert.Error(t, err)
	})

	t.Run("Error_EmptyRole", func(t *testing.T) {
		_, err := service.Issue("user@example.com", "")
		assert.Error(t, err)
	})
}

func TestTokenService_Verify(t *testing.T) {
	service, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	t.Run("Failure_ExpiredToken", func(t *testing.T) {
		token, err := service.IssueWithTTL("user@example.com", domain.RoleConsumer, time.Nanosecond)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		assert.Nil(t, service.Verify(token))
	})

	t.Run("Failure_TamperedSignature", func(t *testing.T) {
		token, err := service.Issue("user@example.com", domain.RoleConsumer)
		require.NoError(t, err)

		// Flip the last character of the signature
		tampered := []byte(token)
		last := len(tampered) - 1
		if tampered[last] == 'A' {
			tampered[last] = 'B'
		} else {
			tampered[last] = 'A'
		}

		assert.Nil(t, service.Verify(string(tampered)))
	})

	t.Run("Failure_WrongSecret", func(t *testing.T) {
		other, err := NewTokenService(&config.Config{JWTSecret: "other-secret"})
		require.NoError(t, err)

		token, err := other.Issue("user@example.com", domain.RoleConsumer)
		require.NoError(t, err)

		assert.Nil(t, service.Verify(token))
	})

	t.Run("Failure_Garbage", func(t *testing.T) {
		assert.Nil(t, service.Verify("not-a-token"))
		assert.Nil(t, service.Verify(""))
	})

	t.Run("Failure_IssuerMismatch", func(t *testing.T) {
		issuing, err := NewTokenService(&config.Config{JWTSecret: "test-secret-key"})
		require.NoError(t, err)

		verifying, err := NewTokenService(&config.Config{
			JWTSecret: "test-secret-key",
			JWTIssuer: "vidshare",
		})
		require.NoError(t, err)

		token, err := issuing.Issue("user@example.com", domain.RoleConsumer)
		require.NoError(t, err)

		assert.Nil(t, verifying.Verify(token))
	})

	t.Run("Success_WithIssuerAndAudience", func(t *testing.T) {
		cfg := &config.Config{
			JWTSecret:   "test-secret-key",
			JWTIssuer:   "vidshare",
			JWTAudience: "vidshare-api",
		}
		svc, err := NewTokenService(cfg)
		require.NoError(t, err)

		token, err := svc.Issue("user@example.com", domain.RoleCreator)
		require.NoError(t, err)

		payload := svc.Verify(token)
		require.NotNil(t, payload)
		assert.Equal(t, "user@example.com", payload.Subject)
	})
}
