package domain

import "time"

// MaxCommentLength bounds stored comment text; longer input is truncated.
const MaxCommentLength = 1000

// Comment is a viewer comment on a video.
type Comment struct {
	ID        string    `bson:"_id"`
	VideoID   string    `bson:"videoId"`
	UserEmail string    `bson:"userEmail"`
	Text      string    `bson:"text"`
	CreatedAt time.Time `bson:"createdAt"`
}

// Rating is a viewer star rating (1..5) on a video.
type Rating struct {
	ID        string    `bson:"_id"`
	VideoID   string    `bson:"videoId"`
	UserEmail string    `bson:"userEmail"`
	Stars     int       `bson:"stars"`
	CreatedAt time.Time `bson:"createdAt"`
}
