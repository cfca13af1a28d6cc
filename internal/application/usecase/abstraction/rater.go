package abstraction

import (
	"context"

	"audiblebooks/internal/domain/dto"
	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/model"
)

type Rater interface {
	Rate(ctx context.Context, id string, ident entity.Identity, rating int, review string) (dto.RatingSummary, error)
	Unrate(ctx context.Context, id string, ident entity.Identity) (dto.RatingSummary, error)
	RatingOf(ctx context.Context, id string, ident entity.Identity) (model.Rating, error)
}
