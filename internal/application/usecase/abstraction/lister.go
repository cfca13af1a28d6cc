package abstraction

import (
	"context"

	"audiblebooks/internal/domain/dto"
	"audiblebooks/internal/domain/model"
)

type Lister interface {
	List(ctx context.Context, authorID string) ([]dto.AudiobookDescriptor, error)
	ListByAuthor(ctx context.Context, authorID string) ([]model.Audiobook, error)
	ListByCategory(ctx context.Context, category string) ([]dto.AudiobookDescriptor, error)
	Categories(ctx context.Context) ([]string, error)
	Subcategories(ctx context.Context) ([]string, error)
}
