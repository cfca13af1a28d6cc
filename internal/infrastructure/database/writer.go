package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/domain/model"
)

type AudiobookWriter struct {
	db *Database
}

func NewWriter(db *Database) *AudiobookWriter {
	return &AudiobookWriter{db: db}
}

func (w *AudiobookWriter) Write(ctx context.Context, book *model.Audiobook) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	if book.ID == "" {
		book.ID = primitive.NewObjectID().Hex()
	}

	coll := w.db.Client.Database(w.db.DBName).Collection(AudiobookCollection)

	if _, err := coll.InsertOne(ctx, book); err != nil {
		return "", errs.StoreWritef("failed to insert audiobook: %v", err)
	}

	return book.ID, nil
}
