package dto

import (
	"time"

	"github.com/allisson/vidshare/internal/media/domain"
	"github.com/allisson/vidshare/internal/media/usecase"
)

// UploadTargetResponse carries a minted blob name and its write-scoped URL.
type UploadTargetResponse struct {
	BlobName  string `json:"blobName"`
	UploadURL string `json:"uploadUrl"`
}

// VideoResponse is the public shape of a video document.
type VideoResponse struct {
	ID          string    `json:"id"`
	OwnerEmail  string    `json:"ownerEmail"`
	Title       string    `json:"title"`
	Publisher   string    `json:"publisher"`
	Producer    string    `json:"producer"`
	Genre       string    `json:"genre"`
	AgeRating   string    `json:"ageRating"`
	BlobName    string    `json:"blobName"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	PlaybackURL string    `json:"playbackUrl,omitempty"`
}

// VideoListResponse wraps a page of videos.
type VideoListResponse struct {
	Videos []VideoResponse `json:"videos"`
}

// CommentResponse is the public shape of a comment.
type CommentResponse struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	UserEmail string    `json:"userEmail"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentListResponse wraps a page of comments.
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

// RatingResponse is the public shape of a rating.
type RatingResponse struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	UserEmail string    `json:"userEmail"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"createdAt"`
}

// RatingListResponse wraps a page of ratings.
type RatingListResponse struct {
	Ratings []RatingResponse `json:"ratings"`
}

// NewVideoResponse maps a domain video.
func NewVideoResponse(video *domain.Video) VideoResponse {
	return VideoResponse{
		ID:         video.ID,
		OwnerEmail: video.OwnerEmail,
		Title:      video.Title,
		Publisher:  video.Publisher,
		Producer:   video.Producer,
		Genre:      video.Genre,
		AgeRating:  video.AgeRating,
		BlobName:   video.BlobName,
		Views:      video.Views,
		CreatedAt:  video.CreatedAt,
	}
}

// NewVideoWithPlaybackResponse maps a video with its playback URL.
func NewVideoWithPlaybackResponse(result *usecase.VideoWithPlayback) VideoResponse {
	response := NewVideoResponse(result.Video)
	response.PlaybackURL = result.PlaybackURL
	return response
}

// NewVideoListResponse maps a slice of domain videos.
func NewVideoListResponse(videos []*domain.Video) VideoListResponse {
	response := VideoListResponse{Videos: make([]VideoResponse, 0, len(videos))}
	for _, video := range videos {
		response.Videos = append(response.Videos, NewVideoResponse(video))
	}
	return response
}

// NewCommentResponse maps a domain comment.
func NewCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		VideoID:   comment.VideoID,
		UserEmail: comment.UserEmail,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}

// NewCommentListResponse maps a slice of domain comments.
func NewCommentListResponse(comments []*domain.Comment) CommentListResponse {
	response := CommentListResponse{Comments: make([]CommentResponse, 0, len(comments))}
	for _, comment := range comments {
		response.Comments = append(response.Comments, NewCommentResponse(comment))
	}
	return response
}

// NewRatingResponse maps a domain rating.
func NewRatingResponse(rating *domain.Rating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID,
		VideoID:   rating.VideoID,
		UserEmail: rating.UserEmail,
		Stars:     rating.Stars,
		CreatedAt: rating.CreatedAt,
	}
}

// NewRatingListResponse maps a slice of domain ratings.
func NewRatingListResponse(ratings []*domain.Rating) RatingListResponse {
	response := RatingListResponse{Ratings: make([]RatingResponse, 0, len(ratings))}
	for _, rating := range ratings {
		response.Ratings = append(response.Ratings, NewRatingResponse(rating))
	}
	return response
}
