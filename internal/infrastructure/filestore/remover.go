package filestore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"audiblebooks/internal/domain/errs"
)

type Remover struct {
	store *Store
}

func NewRemover(store *Store) *Remover {
	return &Remover{store: store}
}

// RemoveByName deletes the most recent revision of the named object, header
// and chunks together. A stream already open on the object may fail on its
// next chunk; no partial chunk is ever handed to a reader.
func (r *Remover) RemoveByName(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, r.store.timeout)
	defer cancel()

	findOpts := options.GridFSFind().
		SetSort(bson.D{{Key: "uploadDate", Value: -1}}).
		SetLimit(1)

	cursor, err := r.store.bucket.FindContext(ctx, bson.M{"filename": name}, findOpts)
	if err != nil {
		return errs.StoreReadf("failed to look up object %q: %v", name, err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return errs.StoreReadf("failed to look up object %q: %v", name, err)
		}

		return errs.NotFoundf("object %q not found", name)
	}

	var doc struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.Decode(&doc); err != nil {
		return errs.StoreReadf("failed to decode header for %q: %v", name, err)
	}

	if err := r.store.bucket.DeleteContext(ctx, doc.ID); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return errs.NotFoundf("object %q not found", name)
		}

		return errs.StoreWritef("failed to delete object %q: %v", name, err)
	}

	return nil
}
