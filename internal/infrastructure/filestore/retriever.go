package filestore

import (
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/errs"
)

type Retriever struct {
	store *Store
}

func NewRetriever(store *Store) *Retriever {
	return &Retriever{store: store}
}

// FindByName returns the header of the most recently stored object with the
// given name.
func (r *Retriever) FindByName(ctx context.Context, name string) (entity.ObjectHeader, error) {
	ctx, cancel := context.WithTimeout(ctx, r.store.timeout)
	defer cancel()

	findOpts := options.GridFSFind().
		SetSort(bson.D{{Key: "uploadDate", Value: -1}}).
		SetLimit(1)

	cursor, err := r.store.bucket.FindContext(ctx, bson.M{"filename": name}, findOpts)
	if err != nil {
		return entity.ObjectHeader{}, errs.StoreReadf("failed to look up object %q: %v", name, err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return entity.ObjectHeader{}, errs.StoreReadf("failed to look up object %q: %v", name, err)
		}

		return entity.ObjectHeader{}, errs.NotFoundf("object %q not found", name)
	}

	var doc fileDoc
	if err := cursor.Decode(&doc); err != nil {
		return entity.ObjectHeader{}, errs.StoreReadf("failed to decode header for %q: %v", name, err)
	}

	return headerFromDoc(doc), nil
}

// Open returns the header plus a chunk stream starting at chunk 0. The stream
// is finite and not restartable; reopen to read again. A chunk missing
// mid-stream surfaces as a read error from the returned reader.
func (r *Retriever) Open(ctx context.Context, name string) (entity.ObjectHeader, io.ReadCloser, error) {
	header, err := r.FindByName(ctx, name)
	if err != nil {
		return entity.ObjectHeader{}, nil, err
	}

	ds, err := r.store.bucket.OpenDownloadStreamByName(name, options.GridFSName().SetRevision(-1))
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return entity.ObjectHeader{}, nil, errs.NotFoundf("object %q not found", name)
		}

		return entity.ObjectHeader{}, nil, errs.StoreReadf("failed to open object %q: %v", name, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := ds.SetReadDeadline(deadline); err != nil {
			return entity.ObjectHeader{}, nil, errs.StoreReadf("failed to open object %q: %v", name, err)
		}
	}

	return header, ds, nil
}

// ReadAll buffers a whole object. Used by the read paths that serve base64
// payloads.
func (r *Retriever) ReadAll(ctx context.Context, name string) (entity.ObjectHeader, []byte, error) {
	header, stream, err := r.Open(ctx, name)
	if err != nil {
		return entity.ObjectHeader{}, nil, err
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return entity.ObjectHeader{}, nil, errs.NotFoundf("object %q truncated mid-stream: %v", name, err)
	}

	return header, data, nil
}

func headerFromDoc(doc fileDoc) entity.ObjectHeader {
	return entity.ObjectHeader{
		ID:          doc.ID.Hex(),
		Name:        doc.Filename,
		ContentType: contentTypeOf(doc.Metadata),
		Length:      doc.Length,
		ChunkSize:   doc.ChunkSize,
		CreatedAt:   doc.UploadDate,
	}
}
