// Package dto contains the media HTTP request and response payloads.
package dto

// CreateVideoRequest publishes metadata for an already uploaded object.
type CreateVideoRequest struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Producer  string `json:"producer"`
	Genre     string `json:"genre"`
	AgeRating string `json:"ageRating"`
	BlobName  string `json:"blobName"`
}

// CreateCommentRequest adds a comment to a video.
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// CreateRatingRequest adds a star rating to a video.
type CreateRatingRequest struct {
	Stars int `json:"stars"`
}
