package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report feedback categories a caller may pick from.
const (
	FeedbackInappropriate = "Inappropriate"
	FeedbackSpam          = "Spam"
	FeedbackOffTopic      = "Off-Topic"
)

// ValidFeedback reports whether fb is one of the fixed report categories.
func ValidFeedback(fb string) bool {
	switch fb {
	case FeedbackInappropriate, FeedbackSpam, FeedbackOffTopic:
		return true
	}
	return false
}

type Comment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	AuthorEmail string             `bson:"authorEmail" json:"authorEmail"`
	AuthorName  string             `bson:"authorName" json:"authorName"`
	AuthorImage string             `bson:"authorImage" json:"authorImage"`
	PostID      string             `bson:"postId" json:"postId"`
	Comment     string             `bson:"comment" json:"comment"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	Reported    bool               `bson:"reported,omitempty" json:"reported,omitempty"`
	Feedback    string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}
