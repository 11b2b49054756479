package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry is a journal entry paired with one Quote via QuoteID. The referenced
// Quote is attached at read time by the handlers, never persisted on the
// entry document itself.
type Entry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	QuoteID     primitive.ObjectID `bson:"quoteId" json:"quoteId"`
	CreatedBy   string             `bson:"createdBy" json:"createdBy"`
	UpdatedBy   string             `bson:"updatedBy" json:"updatedBy"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
