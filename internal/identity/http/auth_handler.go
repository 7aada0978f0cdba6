package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/vidshare/internal/errors"
	"github.com/allisson/vidshare/internal/httputil"
	"github.com/allisson/vidshare/internal/identity/http/dto"
	"github.com/allisson/vidshare/internal/identity/usecase"
)

// AuthHandler handles HTTP requests for registration, login and the current
// account endpoint.
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// RegisterHandler creates a new account.
// POST /v1/auth/register - no authentication required.
// Returns 201 Created with a token and the public user view.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	output, err := h.authUseCase.Register(c.Request.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			httputil.Error(c, http.StatusConflict, "Email already registered. Please log in.")
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAuthResponse(output.Token, output.User))
}

// LoginHandler verifies credentials and issues an identity token.
// POST /v1/auth/login - no authentication required.
// Unknown accounts and bad passwords yield distinct statuses (404 vs 401).
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Email and password are required.")
		return
	}
	if err := req.Validate(); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Email and password are required.")
		return
	}

	output, err := h.authUseCase.Login(c.Request.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case apperrors.Is(err, apperrors.ErrNotFound):
			httputil.Error(c, http.StatusNotFound, "Account not found. Please sign up.")
		case apperrors.Is(err, apperrors.ErrUnauthorized):
			httputil.Error(c, http.StatusUnauthorized, "Invalid credentials.")
		case apperrors.Is(err, apperrors.ErrInvalidInput):
			httputil.Error(c, http.StatusBadRequest, "Email and password are required.")
		default:
			httputil.HandleErrorGin(c, err, h.logger)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthResponse(output.Token, output.User))
}

// MeHandler returns the account behind the authenticated principal.
// GET /v1/auth/me - requires authentication.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	principal, ok := GetPrincipal(c.Request.Context())
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.authUseCase.CurrentUser(c.Request.Context(), principal.ID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			httputil.Error(c, http.StatusNotFound, "User not found")
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		Email: user.Email,
		Role:  user.EffectiveRole().String(),
	})
}
