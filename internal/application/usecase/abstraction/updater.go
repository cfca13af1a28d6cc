package abstraction

import (
	"context"

	"audiblebooks/internal/domain/dto"
	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/model"
)

type Updater interface {
	Update(ctx context.Context, id string, ident entity.Identity, req dto.UpdateRequest) (*model.Audiobook, error)
}
