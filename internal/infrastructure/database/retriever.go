package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/domain/model"
)

type AudiobookRetriever struct {
	db *Database
}

func NewRetriever(db *Database) *AudiobookRetriever {
	return &AudiobookRetriever{db: db}
}

func (r *AudiobookRetriever) GetByID(ctx context.Context, id string) (*model.Audiobook, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, errs.Validationf("invalid audiobook ID format")
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(AudiobookCollection)

	var book model.Audiobook
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&book); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFoundf("audiobook not found")
		}

		return nil, errs.StoreReadf("failed to retrieve audiobook: %v", err)
	}

	return &book, nil
}
