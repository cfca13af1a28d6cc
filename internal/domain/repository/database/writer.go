package database

import (
	"context"

	"audiblebooks/internal/domain/model"
)

type Writer interface {
	Write(ctx context.Context, book *model.Audiobook) (string, error)
}
