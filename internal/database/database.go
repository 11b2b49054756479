package database

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

// Connect opens the process-wide MongoDB connection and returns the database
// handle. The handle is returned even when the ping fails, so callers can keep
// serving and let individual operations fail against a store that is down.
func Connect(mongoURI string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	c, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}
	client = c

	db := c.Database(DatabaseName(mongoURI))

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	if err := c.Ping(pingCtx, nil); err != nil {
		return db, err
	}

	log.Println("✅ Connected to MongoDB")
	return db, nil
}

// DatabaseName extracts the database name from a MongoDB connection string,
// falling back to "journal" when the URI carries none.
func DatabaseName(mongoURI string) string {
	dbName := "journal"
	parts := strings.Split(mongoURI, "/")
	if len(parts) > 3 {
		dbPart := strings.Split(parts[len(parts)-1], "?")[0]
		if dbPart != "" {
			dbName = dbPart
		}
	}
	return dbName
}

func Disconnect() error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
