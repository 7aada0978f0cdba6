// Package usecase implements the identity business logic: registration,
// login, the role authority and privileged role assignment.
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/vidshare/internal/errors"
	"github.com/allisson/vidshare/internal/identity/domain"
	"github.com/allisson/vidshare/internal/identity/service"
	appValidation "github.com/allisson/vidshare/internal/validation"
)

// authUseCase implements AuthUseCase.
type authUseCase struct {
	userRepo      UserRepository
	tokens        service.TokenService
	passwords     service.PasswordService
	autoProvision bool
	logger        *slog.Logger
}

// NewAuthUseCase creates an AuthUseCase.
func NewAuthUseCase(
	userRepo UserRepository,
	tokens service.TokenService,
	passwords service.PasswordService,
	autoProvision bool,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:      userRepo,
		tokens:        tokens,
		passwords:     passwords,
		autoProvision: autoProvision,
		logger:        logger,
	}
}

// validateRegisterInput enforces the registration contract before any store
// access: valid email, assignable role, password with a letter and a number.
func (uc *authUseCase) validateRegisterInput(input RegisterInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email,
			validation.Required.Error("valid email is required"),
			appValidation.Email,
		),
		validation.Field(&input.Role,
			validation.Required.Error(`role must be either "creator" or "consumer"`),
			validation.By(func(value any) error {
				raw, _ := value.(string)
				if _, ok := domain.ParseAssignableRole(raw); !ok {
					return validation.NewError(
						"validation_role",
						`role must be either "creator" or "consumer"`,
					)
				}
				return nil
			}),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			appValidation.Password,
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register creates a new account and issues an identity token for it.
func (uc *authUseCase) Register(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	if err := uc.validateRegisterInput(input); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	role, _ := domain.ParseAssignableRole(input.Role)

	// Enforce uniqueness up front for the clearer 409; the store's primary
	// key still backstops a racing duplicate insert.
	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailAlreadyRegistered
	} else if !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, domain.ErrUserLookupFailed
	}

	hash, err := uc.passwords.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Role:         role.String(),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			return nil, domain.ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	token, err := uc.tokens.Issue(email, role)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("account registered",
		slog.String("email", email),
		slog.String("role", role.String()))

	return &AuthOutput{Token: token, User: user}, nil
}

// Login verifies credentials and issues an identity token. Unknown accounts
// and bad passwords are reported as distinct outcomes.
func (uc *authUseCase) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "email and password are required")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, domain.ErrUserLookupFailed
	}

	// Records without a verifiable credential (e.g., very old seed users or
	// auto-provisioned accounts) behave like missing accounts.
	if user.CredentialScheme() == domain.SchemeNone {
		uc.logger.Debug("login rejected: no verifiable credential", slog.String("email", email))
		return nil, domain.ErrAccountNotFound
	}

	if !uc.passwords.Verify(input.Password, user) {
		return nil, domain.ErrInvalidCredentials
	}

	role := user.EffectiveRole()
	token, err := uc.tokens.Issue(email, role)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{Token: token, User: user}, nil
}

// CurrentUser returns the account record for an authenticated principal.
func (uc *authUseCase) CurrentUser(ctx context.Context, email string) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, domain.ErrUserLookupFailed
	}
	return user, nil
}

// EnsureRole implements the role authority. A role supplied by the
// resolution source is used as-is; otherwise the user store is consulted,
// provisioning a minimal consumer record only when auto-provisioning is on.
// The result is cached onto the principal for the request's lifetime.
func (uc *authUseCase) EnsureRole(ctx context.Context, principal *domain.Principal) (domain.Role, error) {
	if principal.HasRole() {
		return principal.Role, nil
	}

	user, err := uc.userRepo.GetByEmail(ctx, principal.ID)
	if err == nil {
		principal.Role = user.EffectiveRole()
		return principal.Role, nil
	}
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		return "", domain.ErrUserLookupFailed
	}

	if !uc.autoProvision {
		return "", domain.ErrAccountNotFound
	}

	provisioned, err := uc.provisionUser(ctx, principal.ID)
	if err != nil {
		return "", err
	}
	principal.Role = provisioned.EffectiveRole()
	return principal.Role, nil
}

// SetRole assigns a role to an account through the admin bootstrap path,
// provisioning the record when absent.
func (uc *authUseCase) SetRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid email or role")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrUserLookupFailed
		}
		user, err = uc.provisionUser(ctx, email)
		if err != nil {
			return nil, err
		}
	}

	user.Role = role.String()
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Replace(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("role assigned",
		slog.String("email", email),
		slog.String("role", role.String()))

	return user, nil
}

// provisionUser creates a minimal consumer record for a first-seen identity.
func (uc *authUseCase) provisionUser(ctx context.Context, email string) (*domain.User, error) {
	now := time.Now().UTC()
	user := &domain.User{
		Email:     email,
		Role:      domain.RoleConsumer.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		// A racing request may have provisioned the same identity.
		if apperrors.Is(err, apperrors.ErrConflict) {
			return uc.userRepo.GetByEmail(ctx, email)
		}
		return nil, err
	}

	uc.logger.Info("account auto-provisioned", slog.String("email", email))
	return user, nil
}
