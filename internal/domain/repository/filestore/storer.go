package filestore

import (
	"context"
	"io"

	"audiblebooks/internal/domain/entity"
)

// Storer writes one binary object into the chunked store. The full input is
// consumed; the header is written last so partial writes are never visible to
// readers. On error the object must be treated as not created.
type Storer interface {
	Store(ctx context.Context, name, contentType string, r io.Reader) (entity.ObjectHeader, error)
}
