package usecase

import (
	"context"

	"audiblebooks/internal/domain/dto"
	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/domain/model"
	"audiblebooks/internal/domain/repository/database"
)

// Rater maintains the running rating aggregates on a record. A rating is
// upserted by identity: a caller who already rated the book overwrites their
// entry in place. The aggregates are persisted in the same whole-document save
// as the rating mutation.
type Rater struct {
	retriever database.Retriever
	updater   database.Updater
}

func NewRater(retriever database.Retriever, updater database.Updater) *Rater {
	return &Rater{
		retriever: retriever,
		updater:   updater,
	}
}

func (r *Rater) Rate(ctx context.Context, id string, ident entity.Identity,
	rating int, review string,
) (dto.RatingSummary, error) {
	if rating < model.MinRating || rating > model.MaxRating {
		return dto.RatingSummary{}, errs.Aggregatef("rating must be a number between %d and %d",
			model.MinRating, model.MaxRating)
	}
	if len(review) > model.MaxReviewLength {
		return dto.RatingSummary{}, errs.Validationf("review must be less than %d characters",
			model.MaxReviewLength)
	}

	book, err := r.retriever.GetByID(ctx, id)
	if err != nil {
		return dto.RatingSummary{}, err
	}

	book.UpsertRating(ident.ID, rating, review)

	if err := r.updater.Save(ctx, book); err != nil {
		return dto.RatingSummary{}, err
	}

	return summaryOf(book), nil
}

func (r *Rater) Unrate(ctx context.Context, id string, ident entity.Identity) (dto.RatingSummary, error) {
	book, err := r.retriever.GetByID(ctx, id)
	if err != nil {
		return dto.RatingSummary{}, err
	}

	if _, ok := book.RemoveRating(ident.ID); !ok {
		return dto.RatingSummary{}, errs.NotFoundf("rating not found for this audiobook")
	}

	if err := r.updater.Save(ctx, book); err != nil {
		return dto.RatingSummary{}, err
	}

	return summaryOf(book), nil
}

// RatingOf returns the rating the caller holds on the record, if any.
func (r *Rater) RatingOf(ctx context.Context, id string, ident entity.Identity) (model.Rating, error) {
	book, err := r.retriever.GetByID(ctx, id)
	if err != nil {
		return model.Rating{}, err
	}

	rating, ok := book.RatingOf(ident.ID)
	if !ok {
		return model.Rating{}, errs.NotFoundf("rating not found for this audiobook")
	}

	return rating, nil
}

func summaryOf(book *model.Audiobook) dto.RatingSummary {
	return dto.RatingSummary{
		AverageRating: book.AverageRating,
		TotalRatings:  book.TotalRatings,
		TotalCount:    book.TotalCount,
	}
}
