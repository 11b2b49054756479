package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rpipaliya/student-journal-api/internal/models"
	"github.com/rpipaliya/student-journal-api/internal/repository"
)

type quoteRepository struct {
	coll *mongo.Collection
}

func NewQuoteRepository(db *mongo.Database) repository.QuoteRepository {
	return &quoteRepository{coll: db.Collection("quotes")}
}

func (r *quoteRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quote, error) {
	var quote models.Quote
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&quote)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) Save(ctx context.Context, quote *models.Quote) error {
	if quote.ID.IsZero() {
		quote.ID = primitive.NewObjectID()
		_, err := r.coll.InsertOne(ctx, quote)
		return err
	}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": quote.ID}, quote)
	return err
}
