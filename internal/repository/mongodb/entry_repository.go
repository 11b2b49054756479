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

type entryRepository struct {
	coll *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) repository.EntryRepository {
	return &entryRepository{coll: db.Collection("entries")}
}

func (r *entryRepository) FindAll(ctx context.Context) ([]models.Entry, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.Entry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Entry, error) {
	var entry models.Entry
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) Save(ctx context.Context, entry *models.Entry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
		_, err := r.coll.InsertOne(ctx, entry)
		return err
	}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	return err
}

func (r *entryRepository) Remove(ctx context.Context, entry *models.Entry) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": entry.ID})
	return err
}
