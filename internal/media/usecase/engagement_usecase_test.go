package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/vidshare/internal/errors"
	"github.com/allisson/vidshare/internal/media/domain"
)

type fakeCommentRepository struct {
	comments  []*domain.Comment
	lastLimit int
	createErr error
	listErr   error
}

func (f *fakeCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeCommentRepository) ListByVideo(ctx context.Context, videoID string, limit int) ([]*domain.Comment, error) {
	f.lastLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.comments, nil
}

type fakeRatingRepository struct {
	ratings   []*domain.Rating
	lastLimit int
	createErr error
	listErr   error
}

func (f *fakeRatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.ratings = append(f.ratings, rating)
	return nil
}

func (f *fakeRatingRepository) ListByVideo(ctx context.Context, videoID string, limit int) ([]*domain.Rating, error) {
	f.lastLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.ratings, nil
}

type engagementFixture struct {
	videoRepo   *fakeVideoRepository
	commentRepo *fakeCommentRepository
	ratingRepo  *fakeRatingRepository
	useCase     EngagementUseCase
}

func newEngagementFixture() *engagementFixture {
	videoRepo := newFakeVideoRepository()
	videoRepo.videos["vid-1"] = &domain.Video{ID: "vid-1", Title: "Deep Sea"}
	commentRepo := &fakeCommentRepository{}
	ratingRepo := &fakeRatingRepository{}
	return &engagementFixture{
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		ratingRepo:  ratingRepo,
		useCase:     NewEngagementUseCase(videoRepo, commentRepo, ratingRepo, testLogger()),
	}
}

func TestEngagementUseCase_AddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		fixture := newEngagementFixture()

		comment, err := fixture.useCase.AddComment(ctx, "vid-1", "Viewer@Example.com", "  great film  ")
		require.NoError(t, err)

		assert.NotEmpty(t, comment.ID)
		assert.Equal(t, "vid-1", comment.VideoID)
		assert.Equal(t, "viewer@example.com", comment.UserEmail)
		assert.Equal(t, "great film", comment.Text)
		assert.Len(t, fixture.commentRepo.comments, 1)
	})

	t.Run("Success_TruncatesLongText", func(t *testing.T) {
		fixture := newEngagementFixture()

		comment, err := fixture.useCase.AddComment(ctx, "vid-1", "viewer@example.com",
			strings.Repeat("a", domain.MaxCommentLength+500))
		require.NoError(t, err)
		assert.Len(t, comment.Text, domain.MaxCommentLength)
	})

	t.Run("Success_TruncatesOnRuneBoundary", func(t *testing.T) {
		fixture := newEngagementFixture()

		// Three-byte runes so the byte limit falls mid-rune.
		comment, err := fixture.useCase.AddComment(ctx, "vid-1", "viewer@example.com",
			strings.Repeat("界", domain.MaxCommentLength/3+10))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(comment.Text), domain.MaxCommentLength)
		assert.True(t, utf8.ValidString(comment.Text))
	})

	t.Run("Error_EmptyText", func(t *testing.T) {
		fixture := newEngagementFixture()

		_, err := fixture.useCase.AddComment(ctx, "vid-1", "viewer@example.com", "   ")
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "Missing field: text")
		assert.Empty(t, fixture.commentRepo.comments)
	})

	t.Run("Error_UnknownVideo", func(t *testing.T) {
		fixture := newEngagementFixture()

		_, err := fixture.useCase.AddComment(ctx, "missing", "viewer@example.com", "hi")
		assert.True(t, apperrors.Is(err, domain.ErrVideoNotFound))
		assert.Empty(t, fixture.commentRepo.comments)
	})

	t.Run("Error_StoreFailure", func(t *testing.T) {
		fixture := newEngagementFixture()
		fixture.commentRepo.createErr = errors.New("write concern failed")

		_, err := fixture.useCase.AddComment(ctx, "vid-1", "viewer@example.com", "hi")
		assert.Error(t, err)
	})
}

func TestEngagementUseCase_ListComments(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ClampsLimit", func(t *testing.T) {
		fixture := newEngagementFixture()

		_, err := fixture.useCase.ListComments(ctx, "vid-1", 0)
		require.NoError(t, err)
		assert.Equal(t, DefaultEngagementLimit, fixture.commentRepo.lastLimit)

		_, err = fixture.useCase.ListComments(ctx, "vid-1", 10000)
		require.NoError(t, err)
		assert.Equal(t, MaxEngagementLimit, fixture.commentRepo.lastLimit)
	})

	t.Run("Error_StoreFailure", func(t *testing.T) {
		fixture := newEngagementFixture()
		fixture.commentRepo.listErr = errors.New("cursor failed")

		_, err := fixture.useCase.ListComments(ctx, "vid-1", 10)
		assert.Error(t, err)
	})
}

func TestEngagementUseCase_AddRating(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		fixture := newEngagementFixture()

		rating, err := fixture.useCase.AddRating(ctx, "vid-1", "Viewer@Example.com", 4)
		require.NoError(t, err)

		assert.Equal(t, 4, rating.Stars)
		assert.Equal(t, "viewer@example.com", rating.UserEmail)
		assert.Len(t, fixture.ratingRepo.ratings, 1)
	})

	t.Run("Error_StarsOutOfRange", func(t *testing.T) {
		fixture := newEngagementFixture()

		for _, stars := range []int{0, -1, 6, 100} {
			_, err := fixture.useCase.AddRating(ctx, "vid-1", "viewer@example.com", stars)
			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput), stars)
		}
		assert.Empty(t, fixture.ratingRepo.ratings)
	})

	t.Run("Error_UnknownVideo", func(t *testing.T) {
		fixture := newEngagementFixture()

		_, err := fixture.useCase.AddRating(ctx, "missing", "viewer@example.com", 3)
		assert.True(t, apperrors.Is(err, domain.ErrVideoNotFound))
	})
}

func TestEngagementUseCase_ListRatings(t *testing.T) {
	fixture := newEngagementFixture()

	_, err := fixture.useCase.ListRatings(context.Background(), "vid-1", 50)
	require.NoError(t, err)
	assert.Equal(t, 50, fixture.ratingRepo.lastLimit)
}
