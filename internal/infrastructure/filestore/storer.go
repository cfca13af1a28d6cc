package filestore

import (
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/errs"
	"audiblebooks/pkg/logger"
)

type Storer struct {
	store *Store
}

func NewStorer(store *Store) *Storer {
	return &Storer{store: store}
}

// Store consumes the full input stream into chunk documents; the header is
// written on Close, which is what makes the object visible. On any failure the
// partially written chunks are aborted and the object does not exist.
func (s *Storer) Store(ctx context.Context, name, contentType string, r io.Reader) (entity.ObjectHeader, error) {
	ctx, cancel := context.WithTimeout(ctx, s.store.timeout)
	defer cancel()

	opts := options.GridFSUpload().
		SetChunkSizeBytes(s.store.chunkSize).
		SetMetadata(bson.M{"contentType": contentType})

	us, err := s.store.bucket.OpenUploadStream(name, opts)
	if err != nil {
		return entity.ObjectHeader{}, errs.StoreWritef("failed to open upload stream for %q: %v", name, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := us.SetWriteDeadline(deadline); err != nil {
			return entity.ObjectHeader{}, errs.StoreWritef("failed to open upload stream for %q: %v", name, err)
		}
	}

	written, err := io.Copy(us, r)
	if err != nil {
		if abortErr := us.Abort(); abortErr != nil {
			logger.Error("failed to abort partial upload", "name", name, "err", abortErr)
		}

		return entity.ObjectHeader{}, errs.StoreWritef("failed to write chunks for %q: %v", name, err)
	}

	if err := us.Close(); err != nil {
		return entity.ObjectHeader{}, errs.StoreWritef("failed to finalize object %q: %v", name, err)
	}

	id, _ := us.FileID.(primitive.ObjectID)

	return entity.ObjectHeader{
		ID:          id.Hex(),
		Name:        name,
		ContentType: contentType,
		Length:      written,
		ChunkSize:   s.store.chunkSize,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
