// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/vidshare/internal/errors"
)

// ErrorResponse is the error body shape returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes an error response with an explicit status and message.
// Handlers use this when the message is part of the endpoint contract
// (e.g., login's "Account not found. Please sign up.").
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// AbortError writes an error response and aborts the handler chain.
// Middleware must use this so no handler logic runs after a short-circuit.
func AbortError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Error: message})
}

// HandleErrorGin maps domain errors to HTTP status codes and returns a JSON response.
// Invalid-input errors surface their message; everything else gets a fixed message
// so internals never leak.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var message string

	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = inputMessage(err)

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		message = "Unauthorized"

	case apperrors.Is(err, apperrors.ErrForbidden):
		statusCode = http.StatusForbidden
		message = "Forbidden"

	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Not found"

	case apperrors.Is(err, apperrors.ErrConflict):
		statusCode = http.StatusConflict
		message = "Conflict"

	case apperrors.Is(err, apperrors.ErrDependency):
		statusCode = http.StatusInternalServerError
		message = "Internal Server Error"

	default:
		// For unknown/internal errors, don't expose details to the client
		statusCode = http.StatusInternalServerError
		message = "Internal Server Error"
	}

	// Log the full error details (including wrapped errors)
	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

// inputMessage strips the sentinel suffix added by errors.Wrap so validation
// messages read the way the handlers wrote them.
func inputMessage(err error) string {
	msg := err.Error()
	if trimmed, ok := strings.CutSuffix(msg, ": "+apperrors.ErrInvalidInput.Error()); ok {
		return trimmed
	}
	return msg
}
