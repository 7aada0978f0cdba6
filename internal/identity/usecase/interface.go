package usecase

import (
	"context"

	"github.com/allisson/vidshare/internal/identity/domain"
)

// UserRepository defines the user-record store operations the identity
// use case depends on. Records are keyed by lowercase email; uniqueness
// relies on the store's primary key, not application-level locking.
type UserRepository interface {
	// GetByEmail returns the record, or a not-found domain error.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts a record, returning a conflict domain error on a
	// duplicate identifier.
	Create(ctx context.Context, user *domain.User) error
	// Replace overwrites an existing record.
	Replace(ctx context.Context, user *domain.User) error
}

// RegisterInput contains the input data for account registration.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginInput contains the input data for credential login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthOutput is the result of a successful login or registration.
type AuthOutput struct {
	Token string
	User  *domain.User
}

// AuthUseCase defines the identity business logic: registration, credential
// login, the role authority, and the privileged role-assignment path.
type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	CurrentUser(ctx context.Context, email string) (*domain.User, error)

	// EnsureRole fills a resolved principal's role from its source or the
	// user store, provisioning a minimal consumer record when allowed.
	EnsureRole(ctx context.Context, principal *domain.Principal) (domain.Role, error)

	// SetRole assigns a role to an account, provisioning the record first
	// when it does not exist yet.
	SetRole(ctx context.Context, email string, role domain.Role) (*domain.User, error)
}
