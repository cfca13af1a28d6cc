package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"audiblebooks/internal/domain/errs"
)

type AudiobookRemover struct {
	db *Database
}

func NewRemover(db *Database) *AudiobookRemover {
	return &AudiobookRemover{db: db}
}

func (r *AudiobookRemover) RemoveByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(AudiobookCollection)

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errs.StoreWritef("failed to remove audiobook: %v", err)
	}
	if res.DeletedCount == 0 {
		return errs.NotFoundf("audiobook not found")
	}

	return nil
}
