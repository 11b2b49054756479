package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rpipaliya/student-journal-api/internal/models"
)

// EntryRepository is the persistence surface for journal entries.
// FindByID returns (nil, nil) when no entry matches; errors are reserved for
// store failures.
type EntryRepository interface {
	FindAll(ctx context.Context) ([]models.Entry, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Entry, error)
	// Save inserts when the entry has no ID yet, assigning one, and
	// replaces the stored document otherwise.
	Save(ctx context.Context, entry *models.Entry) error
	Remove(ctx context.Context, entry *models.Entry) error
}

// QuoteRepository is the persistence surface for quotes.
type QuoteRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quote, error)
	Save(ctx context.Context, quote *models.Quote) error
}
