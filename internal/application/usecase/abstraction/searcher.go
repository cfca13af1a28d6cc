package abstraction

import (
	"context"

	"audiblebooks/internal/domain/model"
)

type Searcher interface {
	Search(ctx context.Context, query string) ([]model.Audiobook, error)
}
