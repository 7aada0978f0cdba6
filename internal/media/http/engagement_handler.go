package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/vidshare/internal/httputil"
	identityhttp "github.com/allisson/vidshare/internal/identity/http"
	"github.com/allisson/vidshare/internal/media/http/dto"
	"github.com/allisson/vidshare/internal/media/usecase"
)

// EngagementHandler handles HTTP requests for comments and ratings.
type EngagementHandler struct {
	engagementUseCase usecase.EngagementUseCase
	logger            *slog.Logger
}

// NewEngagementHandler creates a new engagement handler with required
// dependencies.
func NewEngagementHandler(engagementUseCase usecase.EngagementUseCase, logger *slog.Logger) *EngagementHandler {
	return &EngagementHandler{
		engagementUseCase: engagementUseCase,
		logger:            logger,
	}
}

// CreateCommentHandler adds a comment to a video.
// POST /v1/videos/:id/comments - requires authentication.
func (h *EngagementHandler) CreateCommentHandler(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	principal, ok := identityhttp.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	comment, err := h.engagementUseCase.AddComment(c.Request.Context(), c.Param("id"), principal.ID, req.Text)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCommentResponse(comment))
}

// ListCommentsHandler lists the comments on a video.
// GET /v1/videos/:id/comments?limit= - no authentication required.
func (h *EngagementHandler) ListCommentsHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	comments, err := h.engagementUseCase.ListComments(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewCommentListResponse(comments))
}

// CreateRatingHandler adds a star rating to a video.
// POST /v1/videos/:id/ratings - requires authentication.
func (h *EngagementHandler) CreateRatingHandler(c *gin.Context) {
	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	principal, ok := identityhttp.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rating, err := h.engagementUseCase.AddRating(c.Request.Context(), c.Param("id"), principal.ID, req.Stars)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewRatingResponse(rating))
}

// ListRatingsHandler lists the ratings on a video.
// GET /v1/videos/:id/ratings?limit= - no authentication required.
func (h *EngagementHandler) ListRatingsHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	ratings, err := h.engagementUseCase.ListRatings(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewRatingListResponse(ratings))
}
