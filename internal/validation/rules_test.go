package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/vidshare/internal/errors"
)

func TestPassword(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		for _, password := range []string{"password1", "a1b2c3d4", "Sup3rSecret"} {
			assert.NoError(t, Password.Validate(password), password)
		}
	})

	t.Run("Failure", func(t *testing.T) {
		for _, password := range []string{"short1", "passwordonly", "12345678", ""} {
			assert.Error(t, Password.Validate(password), password)
		}
	})
}

func TestEmail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		for _, email := range []string{"user@example.com", "first.last+tag@sub.example.org"} {
			assert.NoError(t, Email.Validate(email), email)
		}
	})

	t.Run("Failure", func(t *testing.T) {
		for _, email := range []string{"", "user", "user@", "@example.com", "user@example"} {
			assert.Error(t, Email.Validate(email), email)
		}
	})
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("value"))
	assert.Error(t, NotBlank.Validate(""))
	assert.Error(t, NotBlank.Validate("   "))
}

func TestWrapValidationError(t *testing.T) {
	assert.Nil(t, WrapValidationError(nil))

	wrapped := WrapValidationError(errors.New("must be a valid email address"))
	assert.True(t, apperrors.Is(wrapped, apperrors.ErrInvalidInput))
	assert.Contains(t, wrapped.Error(), "must be a valid email address")
}
