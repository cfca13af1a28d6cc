package usecase

import (
	"bytes"
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"audiblebooks/internal/domain/dto"
	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/domain/model"
	brokerRepository "audiblebooks/internal/domain/repository/broker"
	"audiblebooks/internal/domain/repository/database"
	"audiblebooks/internal/domain/repository/filestore"
	"audiblebooks/pkg/logger"
	"audiblebooks/pkg/utils"
)

type Uploader struct {
	writer      database.Writer
	storer      filestore.Storer
	fileRemover filestore.Remover
	publisher   brokerRepository.Publisher
}

func NewUploader(writer database.Writer, storer filestore.Storer,
	fileRemover filestore.Remover, publisher brokerRepository.Publisher,
) *Uploader {
	return &Uploader{
		writer:      writer,
		storer:      storer,
		fileRemover: fileRemover,
		publisher:   publisher,
	}
}

// Upload stores both payloads concurrently, and only persists the metadata
// record once both objects are durable. If either write fails, any object that
// did succeed is removed best-effort and no record is created.
func (u *Uploader) Upload(ctx context.Context, ident entity.Identity,
	req dto.UploadRequest,
) (*model.Audiobook, error) {
	if err := validateUpload(req); err != nil {
		return nil, err
	}

	var audioHeader, coverHeader entity.ObjectHeader

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		header, err := u.storer.Store(gctx, req.Audio.Name, req.Audio.ContentType, bytes.NewReader(req.Audio.Data))
		if err == nil {
			audioHeader = header
		}

		return err
	})
	g.Go(func() error {
		header, err := u.storer.Store(gctx, req.Cover.Name, req.Cover.ContentType, bytes.NewReader(req.Cover.Data))
		if err == nil {
			coverHeader = header
		}

		return err
	})

	if err := g.Wait(); err != nil {
		u.removeStored(ctx, audioHeader, coverHeader)

		return nil, err
	}

	book := &model.Audiobook{
		AuthorID:      ident.ID,
		AuthorName:    ident.Name,
		Title:         req.Title,
		Description:   req.Description,
		Categories:    req.Categories,
		Subcategories: req.Subcategories,
		Genre:         req.Genre,
		CoverImage:    coverHeader.Name,
		AudioFile:     audioHeader.Name,
		UploadedAt:    time.Now().UTC(),
		Ratings:       []model.Rating{},
	}

	id, err := u.writer.Write(ctx, book)
	if err != nil {
		u.removeStored(ctx, audioHeader, coverHeader)

		return nil, err
	}
	book.ID = id

	if err := u.publisher.Publish(ctx, brokerRepository.Event{
		Kind:        brokerRepository.EventUploaded,
		AudiobookID: book.ID,
		AuthorID:    book.AuthorID,
	}); err != nil {
		logger.Error("failed to publish uploaded event", "id", book.ID, "err", err)
	}

	return book, nil
}

func (u *Uploader) removeStored(ctx context.Context, headers ...entity.ObjectHeader) {
	for _, header := range headers {
		if header.Name == "" {
			continue
		}
		if err := u.fileRemover.RemoveByName(ctx, header.Name); err != nil && !errs.IsNotFound(err) {
			logger.Error("failed to remove object after aborted upload", "name", header.Name, "err", err)
		}
	}
}

func validateUpload(req dto.UploadRequest) error {
	if req.Title == "" || req.Description == "" || len(req.Categories) == 0 {
		return errs.Validationf("please provide title, description, and at least one category")
	}
	if req.Audio == nil || req.Audio.Name == "" || len(req.Audio.Data) == 0 {
		return errs.Validationf("audiobook file is missing or invalid")
	}
	if !utils.IsAudio(req.Audio.ContentType) {
		return errs.Validationf("audiobook file must be an audio type, got %q", req.Audio.ContentType)
	}
	if req.Cover == nil || req.Cover.Name == "" || len(req.Cover.Data) == 0 {
		return errs.Validationf("image file is missing or invalid")
	}
	if !utils.IsImage(req.Cover.ContentType) {
		return errs.Validationf("image file must be an image type, got %q", req.Cover.ContentType)
	}

	return nil
}
