package abstraction

import (
	"context"

	"audiblebooks/internal/domain/entity"
)

type Deleter interface {
	Delete(ctx context.Context, id string, ident entity.Identity) error
}
