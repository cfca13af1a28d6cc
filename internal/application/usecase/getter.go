package usecase

import (
	"context"

	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/domain/model"
	"audiblebooks/internal/domain/repository/database"
)

// Getter retrieves a single record for its owning author.
type Getter struct {
	retriever database.Retriever
}

func NewGetter(retriever database.Retriever) *Getter {
	return &Getter{retriever: retriever}
}

func (g *Getter) GetByID(ctx context.Context, id string, ident entity.Identity) (*model.Audiobook, error) {
	book, err := g.retriever.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if book.AuthorID != ident.ID {
		return nil, errs.Authorizationf("you are not authorized to view this audiobook")
	}

	return book, nil
}
