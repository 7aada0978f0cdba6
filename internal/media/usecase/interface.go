package usecase

import (
	"context"

	"github.com/allisson/vidshare/internal/media/domain"
)

// VideoRepository defines the document-store operations for video metadata.
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	GetByID(ctx context.Context, id string) (*domain.Video, error)
	// List returns the newest videos first, optionally filtered by a
	// case-insensitive search over title, publisher and genre.
	List(ctx context.Context, query string, limit int) ([]*domain.Video, error)
}

// CommentRepository defines the document-store operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByVideo(ctx context.Context, videoID string, limit int) ([]*domain.Comment, error)
}

// RatingRepository defines the document-store operations for ratings.
type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) error
	ListByVideo(ctx context.Context, videoID string, limit int) ([]*domain.Rating, error)
}

// CreateVideoInput contains the metadata for publishing a video whose bytes
// were already uploaded through a capability URL.
type CreateVideoInput struct {
	OwnerEmail string
	Title      string
	Publisher  string
	Producer   string
	Genre      string
	AgeRating  string
	BlobName   string
}

// UploadTarget is a freshly minted object name plus a write-scoped
// capability URL for it.
type UploadTarget struct {
	BlobName  string
	UploadURL string
}

// VideoWithPlayback is a video document paired with a read-scoped capability
// URL for its object, when one exists.
type VideoWithPlayback struct {
	Video       *domain.Video
	PlaybackURL string
}

// VideoUseCase defines the video business logic.
type VideoUseCase interface {
	// CreateUploadTarget mints a unique blob name for the original filename
	// and a write-scoped capability URL for it. No object existence check is
	// performed: the URL intentionally targets a name that does not exist yet.
	CreateUploadTarget(ctx context.Context, filename string) (*UploadTarget, error)

	CreateVideo(ctx context.Context, input CreateVideoInput) (*domain.Video, error)
	ListVideos(ctx context.Context, query string, limit int) ([]*domain.Video, error)
	LatestVideos(ctx context.Context) ([]*domain.Video, error)

	// GetVideo returns the document with a playback capability URL attached.
	GetVideo(ctx context.Context, id string) (*VideoWithPlayback, error)
}

// EngagementUseCase defines the comment and rating business logic.
type EngagementUseCase interface {
	AddComment(ctx context.Context, videoID, userEmail, text string) (*domain.Comment, error)
	ListComments(ctx context.Context, videoID string, limit int) ([]*domain.Comment, error)
	AddRating(ctx context.Context, videoID, userEmail string, stars int) (*domain.Rating, error)
	ListRatings(ctx context.Context, videoID string, limit int) ([]*domain.Rating, error)
}
