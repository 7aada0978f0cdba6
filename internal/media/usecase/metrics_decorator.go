package usecase

import (
	"context"
	"time"

	"github.com/allisson/vidshare/internal/media/domain"
	"github.com/allisson/vidshare/internal/metrics"
)

// videoUseCaseWithMetrics decorates VideoUseCase with metrics instrumentation.
type videoUseCaseWithMetrics struct {
	next    VideoUseCase
	metrics metrics.BusinessMetrics
}

// NewVideoUseCaseWithMetrics wraps a VideoUseCase with metrics recording.
func NewVideoUseCaseWithMetrics(useCase VideoUseCase, m metrics.BusinessMetrics) VideoUseCase {
	return &videoUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// CreateUploadTarget records metrics for upload URL issuance.
func (v *videoUseCaseWithMetrics) CreateUploadTarget(ctx context.Context, filename string) (*UploadTarget, error) {
	start := time.Now()
	target, err := v.next.CreateUploadTarget(ctx, filename)

	status := "success"
	if err != nil {
		status = "error"
	}

	v.metrics.RecordOperation(ctx, "media", "upload_url", status)
	v.metrics.RecordDuration(ctx, "media", "upload_url", time.Since(start), status)

	return target, err
}

// CreateVideo records metrics for video publication.
func (v *videoUseCaseWithMetrics) CreateVideo(ctx context.Context, input CreateVideoInput) (*domain.Video, error) {
	start := time.Now()
	video, err := v.next.CreateVideo(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	v.metrics.RecordOperation(ctx, "media", "video_create", status)
	v.metrics.RecordDuration(ctx, "media", "video_create", time.Since(start), status)

	return video, err
}

// ListVideos records metrics for video listing.
func (v *videoUseCaseWithMetrics) ListVideos(ctx context.Context, query string, limit int) ([]*domain.Video, error) {
	start := time.Now()
	videos, err := v.next.ListVideos(ctx, query, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	v.metrics.RecordOperation(ctx, "media", "video_list", status)
	v.metrics.RecordDuration(ctx, "media", "video_list", time.Since(start), status)

	return videos, err
}

// LatestVideos records metrics for landing-page listing.
func (v *videoUseCaseWithMetrics) LatestVideos(ctx context.Context) ([]*domain.Video, error) {
	start := time.Now()
	videos, err := v.next.LatestVideos(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	v.metrics.RecordOperation(ctx, "media", "video_latest", status)
	v.metrics.RecordDuration(ctx, "media", "video_latest", time.Since(start), status)

	return videos, err
}

// GetVideo records metrics for single-video reads.
func (v *videoUseCaseWithMetrics) GetVideo(ctx context.Context, id string) (*VideoWithPlayback, error) {
	start := time.Now()
	result, err := v.next.GetVideo(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	v.metrics.RecordOperation(ctx, "media", "video_get", status)
	v.metrics.RecordDuration(ctx, "media", "video_get", time.Since(start), status)

	return result, err
}
