package database

import (
	"context"

	"audiblebooks/internal/domain/model"
)

type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.Audiobook, error)
}
