package abstraction

import (
	"context"

	"audiblebooks/internal/domain/dto"
	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/model"
)

type Uploader interface {
	Upload(ctx context.Context, ident entity.Identity, req dto.UploadRequest) (*model.Audiobook, error)
}
