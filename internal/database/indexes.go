package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes the API relies on. Runs on every boot;
// CreateOne is a no-op when the index already exists.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, coll := range []string{"entries", "quotes"} {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "created_at", Value: 1}},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
