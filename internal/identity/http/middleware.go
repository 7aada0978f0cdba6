package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/vidshare/internal/errors"
	"github.com/allisson/vidshare/internal/httputil"
	"github.com/allisson/vidshare/internal/identity/domain"
	"github.com/allisson/vidshare/internal/identity/service"
	"github.com/allisson/vidshare/internal/identity/usecase"
)

// RequireAuthenticated resolves a principal for the request and fills its
// role from the role authority when the source supplied none.
//
// On failure the middleware writes the terminal response itself and aborts
// the chain; no handler logic runs after a short-circuit:
//   - no resolvable principal → 401
//   - principal without a user record (auto-provision off) → 404
//   - user store failure → 500, distinct from the 401/403 outcomes
//
// On success the role-complete principal is stored in the request context and
// is available to handlers via GetPrincipal.
func RequireAuthenticated(
	resolver service.PrincipalResolver,
	auth usecase.AuthUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := resolver.Resolve(c.Request)
		if principal == nil {
			logger.Debug("authentication failed: no principal resolved",
				slog.String("path", c.Request.URL.Path))
			httputil.AbortError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if !principal.HasRole() {
			if _, err := auth.EnsureRole(c.Request.Context(), principal); err != nil {
				switch {
				case apperrors.Is(err, apperrors.ErrNotFound):
					logger.Debug("authentication failed: no user record",
						slog.String("principal_id", principal.ID))
					httputil.AbortError(c, http.StatusNotFound, "User profile missing. Please sign up.")
				default:
					logger.Error("role authority failure",
						slog.String("principal_id", principal.ID),
						slog.Any("error", err))
					httputil.AbortError(c, http.StatusInternalServerError, "User lookup failed")
				}
				return
			}
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))

		logger.Debug("authentication successful",
			slog.String("principal_id", principal.ID),
			slog.String("role", principal.Role.String()),
			slog.String("provider", string(principal.Provider)))

		c.Next()
	}
}

// RequireUserRecord verifies the authenticated principal still has a user
// record in the store. Role resolution alone does not prove the record
// exists: a bearer token carries its role and outlives record deletion.
// Must run after RequireAuthenticated.
func RequireUserRecord(auth usecase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok || principal == nil {
			httputil.AbortError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if _, err := auth.CurrentUser(c.Request.Context(), principal.ID); err != nil {
			switch {
			case apperrors.Is(err, apperrors.ErrNotFound):
				logger.Debug("authorization failed: user record absent",
					slog.String("principal_id", principal.ID))
				httputil.AbortError(c, http.StatusForbidden, "User profile missing. Please sign up.")
			default:
				logger.Error("user record lookup failure",
					slog.String("principal_id", principal.ID),
					slog.Any("error", err))
				httputil.AbortError(c, http.StatusInternalServerError, "User lookup failed")
			}
			return
		}

		c.Next()
	}
}

// RequireRole enforces that the authenticated principal holds the expected
// role. Admin satisfies any role check. Must run after RequireAuthenticated.
func RequireRole(expected domain.Role, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok || principal == nil {
			httputil.AbortError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if !principal.Role.Satisfies(expected) {
			logger.Debug("authorization failed: insufficient role",
				slog.String("principal_id", principal.ID),
				slog.String("role", principal.Role.String()),
				slog.String("required", expected.String()))
			httputil.AbortError(c, http.StatusForbidden,
				fmt.Sprintf("Requires role: %s", expected))
			return
		}

		c.Next()
	}
}

// RequireAnyRole enforces membership in a role set, with the same admin
// override. Must run after RequireAuthenticated.
func RequireAnyRole(expected []domain.Role, logger *slog.Logger) gin.HandlerFunc {
	names := make([]string, len(expected))
	for i, role := range expected {
		names[i] = role.String()
	}
	joined := strings.Join(names, ", ")

	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok || principal == nil {
			httputil.AbortError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if !principal.Role.SatisfiesAny(expected) {
			logger.Debug("authorization failed: insufficient role",
				slog.String("principal_id", principal.ID),
				slog.String("role", principal.Role.String()),
				slog.String("required_any", joined))
			httputil.AbortError(c, http.StatusForbidden,
				fmt.Sprintf("Requires one of roles: %s", joined))
			return
		}

		c.Next()
	}
}
