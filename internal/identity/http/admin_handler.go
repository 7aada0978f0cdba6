package http

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/vidshare/internal/httputil"
	"github.com/allisson/vidshare/internal/identity/domain"
	"github.com/allisson/vidshare/internal/identity/http/dto"
	"github.com/allisson/vidshare/internal/identity/usecase"
)

// HeaderAdminKey carries the bootstrap key for the privileged
// role-assignment path.
const HeaderAdminKey = "X-Admin-Key"

// AdminHandler handles the privileged role-assignment endpoint, guarded by an
// exact-match comparison against the configured bootstrap key.
type AdminHandler struct {
	authUseCase usecase.AuthUseCase
	adminKey    []byte
	logger      *slog.Logger
}

// NewAdminHandler creates a new admin handler. An empty adminKey disables the
// endpoint: no presented key can ever match.
func NewAdminHandler(authUseCase usecase.AuthUseCase, adminKey string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		authUseCase: authUseCase,
		adminKey:    []byte(adminKey),
		logger:      logger,
	}
}

// SetRoleHandler assigns a role to an account, provisioning the record when
// it does not exist yet.
// POST /v1/admin/users/role - guarded by the X-Admin-Key header.
func (h *AdminHandler) SetRoleHandler(c *gin.Context) {
	presented := []byte(c.GetHeader(HeaderAdminKey))
	if len(h.adminKey) == 0 ||
		subtle.ConstantTimeCompare(presented, h.adminKey) != 1 {
		h.logger.Debug("admin key rejected", slog.String("remote_addr", c.ClientIP()))
		httputil.Error(c, http.StatusForbidden, "Forbidden")
		return
	}

	var req dto.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid email or role")
		return
	}

	role, ok := domain.ParseAssignableRole(req.Role)
	if !ok || req.Email == "" {
		httputil.Error(c, http.StatusBadRequest, "Invalid email or role")
		return
	}

	user, err := h.authUseCase.SetRole(c.Request.Context(), req.Email, role)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.SetRoleResponse{
		OK:    true,
		Email: user.Email,
		Role:  user.EffectiveRole().String(),
	})
}
