// Package domain defines the media domain entities: videos, comments and
// ratings.
package domain

import "time"

// Video is a published video's metadata document. The binary object lives in
// the blob store under BlobName; the document never carries bytes.
type Video struct {
	ID         string    `bson:"_id"`
	OwnerEmail string    `bson:"ownerEmail"`
	Title      string    `bson:"title"`
	Publisher  string    `bson:"publisher"`
	Producer   string    `bson:"producer"`
	Genre      string    `bson:"genre"`
	AgeRating  string    `bson:"ageRating"`
	BlobName   string    `bson:"blobName"`
	Views      int64     `bson:"views"`
	CreatedAt  time.Time `bson:"createdAt"`
}
