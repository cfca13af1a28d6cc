package usecase

import (
	"context"
	"strings"

	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/domain/model"
	"audiblebooks/internal/domain/repository/database"
)

type Searcher struct {
	lister database.Lister
}

func NewSearcher(lister database.Lister) *Searcher {
	return &Searcher{lister: lister}
}

// Search matches the query case-insensitively against title, description,
// genre, author name and categories.
func (s *Searcher) Search(ctx context.Context, query string) ([]model.Audiobook, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errs.Validationf("search query is required")
	}

	books, err := s.lister.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, errs.NotFoundf("no audiobooks found matching your search")
	}

	return books, nil
}
