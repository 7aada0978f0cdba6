// Package usecase implements the media business logic.
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/vidshare/internal/errors"
	"github.com/allisson/vidshare/internal/media/domain"
	"github.com/allisson/vidshare/internal/media/service"
)

// List sizing bounds.
const (
	DefaultListLimit = 20
	MaxListLimit     = 50
	LatestListLimit  = 12
)

type videoUseCase struct {
	videoRepo VideoRepository
	issuer    service.CapabilityURLIssuer
	logger    *slog.Logger
}

// NewVideoUseCase returns a VideoUseCase.
func NewVideoUseCase(videoRepo VideoRepository, issuer service.CapabilityURLIssuer, logger *slog.Logger) VideoUseCase {
	return &videoUseCase{videoRepo: videoRepo, issuer: issuer, logger: logger}
}

func (v *videoUseCase) CreateUploadTarget(ctx context.Context, filename string) (*UploadTarget, error) {
	blobName := service.NewBlobName(filename)

	uploadURL, err := v.issuer.IssueUploadURL(ctx, blobName)
	if err != nil {
		v.logger.ErrorContext(ctx, "upload url issuance failed", "error", err)
		return nil, err
	}

	return &UploadTarget{BlobName: blobName, UploadURL: uploadURL}, nil
}

func (v *videoUseCase) CreateVideo(ctx context.Context, input CreateVideoInput) (*domain.Video, error) {
	required := []struct {
		name  string
		value string
	}{
		{"title", input.Title},
		{"publisher", input.Publisher},
		{"producer", input.Producer},
		{"genre", input.Genre},
		{"ageRating", input.AgeRating},
		{"blobName", input.BlobName},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "Missing field: "+field.name)
		}
	}

	video := &domain.Video{
		ID:         uuid.NewString(),
		OwnerEmail: strings.ToLower(strings.TrimSpace(input.OwnerEmail)),
		Title:      strings.TrimSpace(input.Title),
		Publisher:  strings.TrimSpace(input.Publisher),
		Producer:   strings.TrimSpace(input.Producer),
		Genre:      strings.TrimSpace(input.Genre),
		AgeRating:  strings.TrimSpace(input.AgeRating),
		BlobName:   strings.TrimSpace(input.BlobName),
		CreatedAt:  time.Now().UTC(),
	}

	if err := v.videoRepo.Create(ctx, video); err != nil {
		v.logger.ErrorContext(ctx, "video create failed", "error", err)
		return nil, err
	}

	return video, nil
}

func (v *videoUseCase) ListVideos(ctx context.Context, query string, limit int) ([]*domain.Video, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	videos, err := v.videoRepo.List(ctx, strings.TrimSpace(query), limit)
	if err != nil {
		v.logger.ErrorContext(ctx, "video list failed", "error", err)
		return nil, err
	}
	return videos, nil
}

func (v *videoUseCase) LatestVideos(ctx context.Context) ([]*domain.Video, error) {
	videos, err := v.videoRepo.List(ctx, "", LatestListLimit)
	if err != nil {
		v.logger.ErrorContext(ctx, "latest video list failed", "error", err)
		return nil, err
	}
	return videos, nil
}

func (v *videoUseCase) GetVideo(ctx context.Context, id string) (*VideoWithPlayback, error) {
	if id == "" {
		return nil, domain.ErrVideoNotFound
	}

	video, err := v.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &VideoWithPlayback{Video: video}
	if video.BlobName != "" {
		playbackURL, err := v.issuer.IssuePlaybackURL(ctx, video.BlobName)
		if err != nil {
			// The metadata is still useful when signing fails, only the
			// stream link is missing.
			v.logger.WarnContext(ctx, "playback url issuance failed", "video_id", id, "error", err)
		} else {
			result.PlaybackURL = playbackURL
		}
	}

	return result, nil
}
