// Package http provides the HTTP handlers for the media surface.
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

// VideoHandler handles HTTP requests for video uploads and metadata.
type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *slog.Logger
}

// NewVideoHandler creates a new video handler with required dependencies.
func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *slog.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

// UploadURLHandler mints a blob name and a write-scoped capability URL.
// GET /v1/videos/upload-url?filename=x - requires the creator role.
// An omitted filename defaults to video.mp4.
func (h *VideoHandler) UploadURLHandler(c *gin.Context) {
	filename := c.Query("filename")
	if filename == "" {
		filename = "video.mp4"
	}

	target, err := h.videoUseCase.CreateUploadTarget(c.Request.Context(), filename)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.UploadTargetResponse{
		BlobName:  target.BlobName,
		UploadURL: target.UploadURL,
	})
}

// CreateHandler publishes the metadata of an uploaded video.
// POST /v1/videos - requires the creator role.
func (h *VideoHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	principal, ok := identityhttp.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	video, err := h.videoUseCase.CreateVideo(c.Request.Context(), usecase.CreateVideoInput{
		OwnerEmail: principal.ID,
		Title:      req.Title,
		Publisher:  req.Publisher,
		Producer:   req.Producer,
		Genre:      req.Genre,
		AgeRating:  req.AgeRating,
		BlobName:   req.BlobName,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewVideoResponse(video))
}

// ListHandler lists videos, newest first, with an optional search query.
// GET /v1/videos?q=&limit= - no authentication required.
func (h *VideoHandler) ListHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	videos, err := h.videoUseCase.ListVideos(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewVideoListResponse(videos))
}

// LatestHandler returns the most recent uploads for the landing page.
// GET /v1/videos/latest - no authentication required.
func (h *VideoHandler) LatestHandler(c *gin.Context) {
	videos, err := h.videoUseCase.LatestVideos(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewVideoListResponse(videos))
}

// GetHandler returns one video with a read-scoped playback URL attached.
// GET /v1/videos/:id - no authentication required.
func (h *VideoHandler) GetHandler(c *gin.Context) {
	result, err := h.videoUseCase.GetVideo(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewVideoWithPlaybackResponse(result))
}
