package usecase

import (
	"bytes"
	"context"

	"audiblebooks/internal/domain/dto"
	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/domain/model"
	"audiblebooks/internal/domain/repository/database"
	"audiblebooks/internal/domain/repository/filestore"
	"audiblebooks/pkg/logger"
	"audiblebooks/pkg/utils"
)

// Updater applies partial updates: only fields present in the request change.
// Replacement payloads are stored before the old object is deleted, so the
// record never references a removed blob; cleanup of the old object is best
// effort and a failure there is logged, never fatal.
type Updater struct {
	retriever   database.Retriever
	updater     database.Updater
	storer      filestore.Storer
	fileRemover filestore.Remover
}

func NewUpdater(retriever database.Retriever, updater database.Updater,
	storer filestore.Storer, fileRemover filestore.Remover,
) *Updater {
	return &Updater{
		retriever:   retriever,
		updater:     updater,
		storer:      storer,
		fileRemover: fileRemover,
	}
}

func (u *Updater) Update(ctx context.Context, id string, ident entity.Identity,
	req dto.UpdateRequest,
) (*model.Audiobook, error) {
	book, err := u.retriever.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if book.AuthorID != ident.ID {
		return nil, errs.Authorizationf("you are not authorized to update this audiobook")
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Categories != nil {
		if len(req.Categories) == 0 {
			return nil, errs.Validationf("categories cannot be emptied")
		}
		fields["categories"] = req.Categories
	}
	if req.Subcategories != nil {
		fields["subcategories"] = req.Subcategories
	}
	if req.Genre != nil {
		fields["genre"] = *req.Genre
	}

	if req.Cover != nil {
		if !utils.IsImage(req.Cover.ContentType) {
			return nil, errs.Validationf("image file must be an image type, got %q", req.Cover.ContentType)
		}

		name, err := u.replaceObject(ctx, book.CoverImage, req.Cover)
		if err != nil {
			return nil, err
		}
		fields["coverImage"] = name
	}

	if req.Audio != nil {
		if !utils.IsAudio(req.Audio.ContentType) {
			return nil, errs.Validationf("audiobook file must be an audio type, got %q", req.Audio.ContentType)
		}

		name, err := u.replaceObject(ctx, book.AudioFile, req.Audio)
		if err != nil {
			return nil, err
		}
		fields["audioFile"] = name
	}

	if len(fields) == 0 {
		return book, nil
	}

	return u.updater.SetFields(ctx, id, fields)
}

// replaceObject stores the new payload first; the old object is only removed
// once the new one is durable, so a failed store leaves the record resolvable.
func (u *Updater) replaceObject(ctx context.Context, oldName string, part *entity.Part) (string, error) {
	if part.Name == "" || len(part.Data) == 0 {
		return "", errs.Validationf("replacement file is missing or invalid")
	}

	header, err := u.storer.Store(ctx, part.Name, part.ContentType, bytes.NewReader(part.Data))
	if err != nil {
		return "", err
	}

	if oldName != "" && oldName != header.Name {
		if err := u.fileRemover.RemoveByName(ctx, oldName); err != nil && !errs.IsNotFound(err) {
			logger.Error("failed to remove old object", "name", oldName, "err", err)
		}
	}

	return header.Name, nil
}
