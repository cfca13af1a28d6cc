package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/domain/model"
)

type AudiobookUpdater struct {
	db *Database
}

func NewUpdater(db *Database) *AudiobookUpdater {
	return &AudiobookUpdater{db: db}
}

// Save replaces the whole document. Rating mutations go through here so the
// ratings array and its derived fields land in one write.
func (u *AudiobookUpdater) Save(ctx context.Context, book *model.Audiobook) error {
	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	coll := u.db.Client.Database(u.db.DBName).Collection(AudiobookCollection)

	res, err := coll.ReplaceOne(ctx, bson.M{"_id": book.ID}, book)
	if err != nil {
		return errs.StoreWritef("failed to save audiobook: %v", err)
	}
	if res.MatchedCount == 0 {
		return errs.NotFoundf("audiobook not found")
	}

	return nil
}

// SetFields applies a partial update and returns the updated record. Only the
// given fields change; everything else is left untouched.
func (u *AudiobookUpdater) SetFields(ctx context.Context, id string, fields map[string]any) (*model.Audiobook, error) {
	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	coll := u.db.Client.Database(u.db.DBName).Collection(AudiobookCollection)

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var book model.Audiobook
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFoundf("audiobook not found")
		}

		return nil, errs.StoreWritef("failed to update audiobook: %v", err)
	}

	return &book, nil
}
