package usecase

import (
	"context"
	"time"

	"github.com/allisson/vidshare/internal/identity/domain"
	"github.com/allisson/vidshare/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for account registration operations.
func (a *authUseCaseWithMetrics) Register(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	start := time.Now()
	output, err := a.next.Register(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "identity", "register", status)
	a.metrics.RecordDuration(ctx, "identity", "register", time.Since(start), status)

	return output, err
}

// Login records metrics for credential login operations.
func (a *authUseCaseWithMetrics) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	start := time.Now()
	output, err := a.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "identity", "login", status)
	a.metrics.RecordDuration(ctx, "identity", "login", time.Since(start), status)

	return output, err
}

// CurrentUser records metrics for current-account lookups.
func (a *authUseCaseWithMetrics) CurrentUser(ctx context.Context, email string) (*domain.User, error) {
	start := time.Now()
	user, err := a.next.CurrentUser(ctx, email)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "identity", "current_user", status)
	a.metrics.RecordDuration(ctx, "identity", "current_user", time.Since(start), status)

	return user, err
}

// EnsureRole records metrics for role authority lookups.
func (a *authUseCaseWithMetrics) EnsureRole(ctx context.Context, principal *domain.Principal) (domain.Role, error) {
	start := time.Now()
	role, err := a.next.EnsureRole(ctx, principal)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "identity", "ensure_role", status)
	a.metrics.RecordDuration(ctx, "identity", "ensure_role", time.Since(start), status)

	return role, err
}

// SetRole records metrics for privileged role assignments.
func (a *authUseCaseWithMetrics) SetRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	start := time.Now()
	user, err := a.next.SetRole(ctx, email, role)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "identity", "set_role", status)
	a.metrics.RecordDuration(ctx, "identity", "set_role", time.Since(start), status)

	return user, err
}
