package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quote is a standalone attributed text snippet.
// CreatedAt is camelCase on the wire, unlike Entry's timestamps; the
// inconsistency is part of the published API.
type Quote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Quote     string             `bson:"quote" json:"quote"`
	Author    string             `bson:"author" json:"author"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
