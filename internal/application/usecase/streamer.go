package usecase

import (
	"context"
	"io"

	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/repository/filestore"
)

// Streamer exposes whole-object read-out of stored blobs by name.
type Streamer struct {
	files filestore.Retriever
}

func NewStreamer(files filestore.Retriever) *Streamer {
	return &Streamer{files: files}
}

func (s *Streamer) Open(ctx context.Context, name string) (entity.ObjectHeader, io.ReadCloser, error) {
	return s.files.Open(ctx, name)
}

func (s *Streamer) ReadAll(ctx context.Context, name string) (entity.ObjectHeader, []byte, error) {
	return s.files.ReadAll(ctx, name)
}
