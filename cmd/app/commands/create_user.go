package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	identityusecase "github.com/allisson/vidshare/internal/identity/usecase"
)

// RunCreateUser registers a new account from the command line. The role is
// restricted to the assignable set, same as the public registration endpoint.
// Outputs the created account in either text or JSON format.
func RunCreateUser(
	ctx context.Context,
	authUseCase identityusecase.AuthUseCase,
	logger *slog.Logger,
	email, password, role, format string,
	io IOTuple,
) error {
	logger.Info("creating new user", slog.String("email", email), slog.String("role", role))

	output, err := authUseCase.Register(ctx, identityusecase.RegisterInput{
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		outputUserJSON(output.User.Email, output.User.EffectiveRole().String(), io.Writer)
	} else {
		_, _ = fmt.Fprintln(io.Writer, "User created successfully!")
		_, _ = fmt.Fprintf(io.Writer, "Email: %s\n", output.User.Email)
		_, _ = fmt.Fprintf(io.Writer, "Role: %s\n", output.User.EffectiveRole())
	}

	return nil
}

// outputUserJSON outputs an account in JSON format for machine consumption.
func outputUserJSON(email, role string, writer io.Writer) {
	result := map[string]string{
		"email": email,
		"role":  role,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
