package filestore

import (
	"context"
	"io"

	"audiblebooks/internal/domain/entity"
)

// Retriever resolves stored objects by name. Names are not unique at the
// storage layer; lookups resolve to the most recently stored revision.
type Retriever interface {
	FindByName(ctx context.Context, name string) (entity.ObjectHeader, error)

	// Open returns a finite, non-restartable chunk stream starting at chunk 0.
	// A missing header, or a chunk missing mid-stream, surfaces as a not-found
	// error.
	Open(ctx context.Context, name string) (entity.ObjectHeader, io.ReadCloser, error)

	// ReadAll buffers a whole object into memory.
	ReadAll(ctx context.Context, name string) (entity.ObjectHeader, []byte, error)
}
