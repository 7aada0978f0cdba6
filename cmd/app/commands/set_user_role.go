package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allisson/vidshare/internal/identity/domain"
	identityusecase "github.com/allisson/vidshare/internal/identity/usecase"
)

// RunSetUserRole assigns a role to an account, provisioning the record first
// when it does not exist. Unlike the HTTP surfaces, the operator CLI accepts
// any role including admin.
func RunSetUserRole(
	ctx context.Context,
	authUseCase identityusecase.AuthUseCase,
	logger *slog.Logger,
	email, roleName, format string,
	io IOTuple,
) error {
	role, ok := domain.ParseRole(roleName)
	if !ok {
		return fmt.Errorf("invalid role: %s (valid options: creator, consumer, admin)", roleName)
	}

	logger.Info("setting user role", slog.String("email", email), slog.String("role", role.String()))

	user, err := authUseCase.SetRole(ctx, email, role)
	if err != nil {
		return fmt.Errorf("failed to set user role: %w", err)
	}

	if format == "json" {
		outputUserJSON(user.Email, user.EffectiveRole().String(), io.Writer)
	} else {
		_, _ = fmt.Fprintln(io.Writer, "Role updated successfully!")
		_, _ = fmt.Fprintf(io.Writer, "Email: %s\n", user.Email)
		_, _ = fmt.Fprintf(io.Writer, "Role: %s\n", user.EffectiveRole())
	}

	return nil
}
