package usecase

import (
	"context"

	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/errs"
	brokerRepository "audiblebooks/internal/domain/repository/broker"
	"audiblebooks/internal/domain/repository/database"
	"audiblebooks/internal/domain/repository/filestore"
	"audiblebooks/pkg/logger"
)

// Deleter removes a record and releases its two referenced objects. Object
// cleanup is best effort; record removal is unconditional, trading a possible
// orphaned blob for guaranteed metadata consistency.
type Deleter struct {
	retriever   database.Retriever
	remover     database.Remover
	fileRemover filestore.Remover
	publisher   brokerRepository.Publisher
}

func NewDeleter(retriever database.Retriever, remover database.Remover,
	fileRemover filestore.Remover, publisher brokerRepository.Publisher,
) *Deleter {
	return &Deleter{
		retriever:   retriever,
		remover:     remover,
		fileRemover: fileRemover,
		publisher:   publisher,
	}
}

func (d *Deleter) Delete(ctx context.Context, id string, ident entity.Identity) error {
	book, err := d.retriever.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if book.AuthorID != ident.ID {
		return errs.Authorizationf("you are not authorized to delete this audiobook")
	}

	for _, name := range []string{book.CoverImage, book.AudioFile} {
		if name == "" {
			continue
		}
		if err := d.fileRemover.RemoveByName(ctx, name); err != nil && !errs.IsNotFound(err) {
			logger.Error("failed to remove object during delete", "id", id, "name", name, "err", err)
		}
	}

	if err := d.remover.RemoveByID(ctx, id); err != nil {
		return err
	}

	if err := d.publisher.Publish(ctx, brokerRepository.Event{
		Kind:        brokerRepository.EventDeleted,
		AudiobookID: id,
		AuthorID:    book.AuthorID,
	}); err != nil {
		logger.Error("failed to publish deleted event", "id", id, "err", err)
	}

	return nil
}
