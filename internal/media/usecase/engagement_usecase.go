package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	apperrors "github.com/allisson/vidshare/internal/errors"
	"github.com/allisson/vidshare/internal/media/domain"
)

// Engagement list sizing bounds.
const (
	DefaultEngagementLimit = 20
	MaxEngagementLimit     = 100
)

type engagementUseCase struct {
	videoRepo   VideoRepository
	commentRepo CommentRepository
	ratingRepo  RatingRepository
	logger      *slog.Logger
}

// NewEngagementUseCase returns an EngagementUseCase.
func NewEngagementUseCase(videoRepo VideoRepository, commentRepo CommentRepository, ratingRepo RatingRepository, logger *slog.Logger) EngagementUseCase {
	return &engagementUseCase{
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		ratingRepo:  ratingRepo,
		logger:      logger,
	}
}

func (e *engagementUseCase) AddComment(ctx context.Context, videoID, userEmail, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "Missing field: text")
	}
	if len(text) > domain.MaxCommentLength {
		// Cut on a rune boundary so the stored text stays valid UTF-8.
		cut := domain.MaxCommentLength
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	if _, err := e.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		UserEmail: strings.ToLower(strings.TrimSpace(userEmail)),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if err := e.commentRepo.Create(ctx, comment); err != nil {
		e.logger.ErrorContext(ctx, "comment create failed", "video_id", videoID, "error", err)
		return nil, err
	}

	return comment, nil
}

func (e *engagementUseCase) ListComments(ctx context.Context, videoID string, limit int) ([]*domain.Comment, error) {
	comments, err := e.commentRepo.ListByVideo(ctx, videoID, clampEngagementLimit(limit))
	if err != nil {
		e.logger.ErrorContext(ctx, "comment list failed", "video_id", videoID, "error", err)
		return nil, err
	}
	return comments, nil
}

func (e *engagementUseCase) AddRating(ctx context.Context, videoID, userEmail string, stars int) (*domain.Rating, error) {
	if stars < 1 || stars > 5 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("stars must be between 1 and 5, got %d", stars))
	}

	if _, err := e.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	rating := &domain.Rating{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		UserEmail: strings.ToLower(strings.TrimSpace(userEmail)),
		Stars:     stars,
		CreatedAt: time.Now().UTC(),
	}

	if err := e.ratingRepo.Create(ctx, rating); err != nil {
		e.logger.ErrorContext(ctx, "rating create failed", "video_id", videoID, "error", err)
		return nil, err
	}

	return rating, nil
}

func (e *engagementUseCase) ListRatings(ctx context.Context, videoID string, limit int) ([]*domain.Rating, error) {
	ratings, err := e.ratingRepo.ListByVideo(ctx, videoID, clampEngagementLimit(limit))
	if err != nil {
		e.logger.ErrorContext(ctx, "rating list failed", "video_id", videoID, "error", err)
		return nil, err
	}
	return ratings, nil
}

func clampEngagementLimit(limit int) int {
	if limit <= 0 {
		return DefaultEngagementLimit
	}
	if limit > MaxEngagementLimit {
		return MaxEngagementLimit
	}
	return limit
}
