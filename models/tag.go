package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Tag struct {
	ID  primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Tag string             `bson:"tag" json:"tag"`

	// Number of posts whose tag list contains this tag, computed at read time.
	PostCount int64 `bson:"-" json:"postCount"`
}
