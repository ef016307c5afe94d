package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	AuthorEmail string             `bson:"authorEmail" json:"authorEmail"`
	AuthorName  string             `bson:"authorName" json:"authorName"`
	AuthorImage string             `bson:"authorImage" json:"authorImage"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Tags        []string           `bson:"tags" json:"tags"`
	UpVotes     int64              `bson:"upVotes" json:"upVotes"`
	DownVotes   int64              `bson:"downVotes" json:"downVotes"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`

	// Populated at read time, never stored.
	CommentsCount int64 `bson:"-" json:"commentsCount"`
}
