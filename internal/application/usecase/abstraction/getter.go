package abstraction

import (
	"context"

	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/model"
)

// Getter retrieves one audiobook record for its owning author.
type Getter interface {
	GetByID(ctx context.Context, id string, ident entity.Identity) (*model.Audiobook, error)
}
