package abstraction

import (
	"context"
	"io"

	"audiblebooks/internal/domain/entity"
)

type Streamer interface {
	Open(ctx context.Context, name string) (entity.ObjectHeader, io.ReadCloser, error)
	ReadAll(ctx context.Context, name string) (entity.ObjectHeader, []byte, error)
}
