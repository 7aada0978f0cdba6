package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/vidshare/internal/config"
	apperrors "github.com/allisson/vidshare/internal/errors"
	"github.com/allisson/vidshare/internal/identity/domain"
	"github.com/allisson/vidshare/internal/identity/service"
)

// fakeUserRepository is an in-memory UserRepository keyed by lowercase email.
type fakeUserRepository struct {
	users    map[string]*domain.User
	getErr   error
	creates  int
	replaces int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, exists := f.users[user.Email]; exists {
		return domain.ErrEmailAlreadyRegistered
	}
	copied := *user
	f.users[user.Email] = &copied
	f.creates++
	return nil
}

func (f *fakeUserRepository) Replace(ctx context.Context, user *domain.User) error {
	if _, exists := f.users[user.Email]; !exists {
		return domain.ErrAccountNotFound
	}
	copied := *user
	f.users[user.Email] = &copied
	f.replaces++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAuthUseCase(t *testing.T, repo UserRepository, autoProvision bool) AuthUseCase {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:     "test-secret-key",
		JWTExpiration: time.Hour,
		BcryptCost:    8,
	}

	tokens, err := service.NewTokenService(cfg)
	require.NoError(t, err)

	return NewAuthUseCase(repo, tokens, service.NewPasswordService(cfg), autoProvision, testLogger())
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, false)

		output, err := uc.Register(context.Background(), RegisterInput{
			Email:    "Creator@Example.com",
			Password: "password1",
			Role:     "creator",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, output.Token)
		assert.Equal(t, "creator@example.com", output.User.Email)
		assert.Equal(t, domain.RoleCreator, output.User.EffectiveRole())
		assert.Equal(t, domain.SchemeBcrypt, output.User.CredentialScheme())
	})

	t.Run("Error_InvalidEmail", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, false)

		_, err := uc.Register(context.Background(), RegisterInput{
			Email:    "not-an-email",
			Password: "password1",
			Role:     "consumer",
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		assert.Zero(t, repo.creates, "validation failures must not touch the store")
	})

	t.Run("Error_AdminRoleRejected", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, false)

		_, err := uc.Register(context.Background(), RegisterInput{
			Email:    "user@example.com",
			Password: "password1",
			Role:     "admin",
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), `role must be either "creator" or "consumer"`)
	})

	t.Run("Error_WeakPassword", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, false)

		for _, password := range []string{"short1", "passwordonly", "12345678"} {
			_, err := uc.Register(context.Background(), RegisterInput{
				Email:    "user@example.com",
				Password: password,
				Role:     "consumer",
			})
			require.Error(t, err, password)
			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput), password)
		}
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, false)

		input := RegisterInput{Email: "user@example.com", Password: "password1", Role: "consumer"}
		_, err := uc.Register(context.Background(), input)
		require.NoError(t, err)

		_, err = uc.Register(context.Background(), input)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	})

	t.Run("Error_StoreFailure", func(t *testing.T) {
		repo := newFakeUserRepository()
		repo.getErr = apperrors.Wrap(apperrors.ErrDependency, "store down")
		uc := testAuthUseCase(t, repo, false)

		_, err := uc.Register(context.Background(), RegisterInput{
			Email:    "user@example.com",
			Password: "password1",
			Role:     "consumer",
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrDependency))
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	registerUser := func(t *testing.T, uc AuthUseCase, email, password, role string) {
		t.Helper()
		_, err := uc.Register(context.Background(), RegisterInput{
			Email:    email,
			Password: password,
			Role:     role,
		})
		require.NoError(t, err)
	}

	t.Run("Success", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, false)
		registerUser(t, uc, "user@example.com", "password1", "creator")

		output, err := uc.Login(context.Background(), LoginInput{
			Email:    "User@Example.com",
			Password: "password1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, output.Token)
		assert.Equal(t, "user@example.com", output.User.Email)
	})

	t.Run("Error_MissingFields", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, false)

		for _, input := range []LoginInput{
			{},
			{Email: "user@example.com"},
			{Password: "password1"},
		} {
			_, err := uc.Login(context.Background(), input)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		}
	})

	t.Run("Error_UnknownAccount", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, false)

		_, err := uc.Login(context.Background(), LoginInput{
			Email:    "ghost@example.com",
			Password: "password1",
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
		assert.False(t, apperrors.Is(err, apperrors.ErrUnauthorized))
	})

	t.Run("Error_WrongPassword", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, false)
		registerUser(t, uc, "user@example.com", "password1", "consumer")

		_, err := uc.Login(context.Background(), LoginInput{
			Email:    "user@example.com",
			Password: "password2",
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
		assert.False(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("Error_RecordWithoutCredential", func(t *testing.T) {
		repo := newFakeUserRepository()
		repo.users["bare@example.com"] = &domain.User{Email: "bare@example.com", Role: "consumer"}
		uc := testAuthUseCase(t, repo, false)

		_, err := uc.Login(context.Background(), LoginInput{
			Email:    "bare@example.com",
			Password: "password1",
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("Success_LegacyCredential", func(t *testing.T) {
		repo := newFakeUserRepository()
		// hex sha256 of "s1:password1"
		repo.users["legacy@example.com"] = &domain.User{
			Email:        "legacy@example.com",
			Role:         "creator",
			PasswordHash: sha256Hex("s1:password1"),
			PasswordSalt: "s1",
		}
		uc := testAuthUseCase(t, repo, false)

		output, err := uc.Login(context.Background(), LoginInput{
			Email:    "legacy@example.com",
			Password: "password1",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleCreator, output.User.EffectiveRole())
	})

	t.Run("Error_StoreFailure", func(t *testing.T) {
		repo := newFakeUserRepository()
		repo.getErr = apperrors.Wrap(apperrors.ErrDependency, "store down")
		uc := testAuthUseCase(t, repo, false)

		_, err := uc.Login(context.Background(), LoginInput{
			Email:    "user@example.com",
			Password: "password1",
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrDependency))
		assert.False(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestAuthUseCase_EnsureRole(t *testing.T) {
	t.Run("SourceRoleUsedAsIs", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, false)

		principal := &domain.Principal{ID: "user@example.com", Role: domain.RoleCreator}
		role, err := uc.EnsureRole(context.Background(), principal)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleCreator, role)
	})

	t.Run("StoreRoleFillsPrincipal", func(t *testing.T) {
		repo := newFakeUserRepository()
		repo.users["user@example.com"] = &domain.User{Email: "user@example.com", Role: "creator"}
		uc := testAuthUseCase(t, repo, false)

		principal := &domain.Principal{ID: "user@example.com"}
		role, err := uc.EnsureRole(context.Background(), principal)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleCreator, role)
		assert.Equal(t, domain.RoleCreator, principal.Role)
	})

	t.Run("Error_MissingRecordWithoutAutoProvision", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, false)

		principal := &domain.Principal{ID: "ghost@example.com"}
		_, err := uc.EnsureRole(context.Background(), principal)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
		assert.Zero(t, repo.creates)
	})

	t.Run("AutoProvisionCreatesConsumer", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, true)

		principal := &domain.Principal{ID: "new@example.com"}
		role, err := uc.EnsureRole(context.Background(), principal)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleConsumer, role)

		created, ok := repo.users["new@example.com"]
		require.True(t, ok)
		assert.Equal(t, domain.SchemeNone, created.CredentialScheme())
	})

	t.Run("Error_StoreFailureIsNotNotFound", func(t *testing.T) {
		repo := newFakeUserRepository()
		repo.getErr = apperrors.Wrap(apperrors.ErrDependency, "store down")
		uc := testAuthUseCase(t, repo, true)

		principal := &domain.Principal{ID: "user@example.com"}
		_, err := uc.EnsureRole(context.Background(), principal)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrDependency))
		assert.False(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestAuthUseCase_SetRole(t *testing.T) {
	t.Run("Success_ExistingUser", func(t *testing.T) {
		repo := newFakeUserRepository()
		repo.users["user@example.com"] = &domain.User{Email: "user@example.com", Role: "consumer"}
		uc := testAuthUseCase(t, repo, false)

		user, err := uc.SetRole(context.Background(), "User@Example.com", domain.RoleCreator)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleCreator, user.EffectiveRole())
		assert.Equal(t, 1, repo.replaces)
	})

	t.Run("Success_ProvisionsMissingUser", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, false)

		user, err := uc.SetRole(context.Background(), "new@example.com", domain.RoleCreator)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleCreator, user.EffectiveRole())
		assert.Equal(t, 1, repo.creates)
	})

	t.Run("Error_EmptyEmail", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, false)

		_, err := uc.SetRole(context.Background(), "  ", domain.RoleCreator)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}

func TestAuthUseCase_CurrentUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := newFakeUserRepository()
		repo.users["user@example.com"] = &domain.User{Email: "user@example.com", Role: "creator"}
		uc := testAuthUseCase(t, repo, false)

		user, err := uc.CurrentUser(context.Background(), "User@Example.com")
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", user.Email)
	})

	t.Run("Error_Missing", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := testAuthUseCase(t, repo, false)

		_, err := uc.CurrentUser(context.Background(), "ghost@example.com")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

// sha256Hex mirrors the legacy credential digest for fixtures.
func sha256Hex(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
