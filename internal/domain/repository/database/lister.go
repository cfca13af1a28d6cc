package database

import (
	"context"

	"audiblebooks/internal/domain/model"
)

// Lister covers the read paths that return record sets: plain listing
// (optionally scoped to an author), free-text search, category browsing and
// the distinct category and subcategory names.
type Lister interface {
	List(ctx context.Context, authorID string) ([]model.Audiobook, error)
	Search(ctx context.Context, query string) ([]model.Audiobook, error)
	ListByCategory(ctx context.Context, category string) ([]model.Audiobook, error)
	Categories(ctx context.Context) ([]string, error)
	Subcategories(ctx context.Context) ([]string, error)
}
