package usecase

import (
	"context"
	"encoding/base64"

	"audiblebooks/internal/domain/dto"
	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/domain/model"
	"audiblebooks/internal/domain/repository/database"
	"audiblebooks/internal/domain/repository/filestore"
	"audiblebooks/pkg/logger"
)

// Lister serves the browse paths: records are returned as descriptors with
// their referenced blobs resolved and base64-encoded. A blob that cannot be
// fetched is tolerated; the record is still listed with nil data.
type Lister struct {
	lister database.Lister
	files  filestore.Retriever
}

func NewLister(lister database.Lister, files filestore.Retriever) *Lister {
	return &Lister{
		lister: lister,
		files:  files,
	}
}

func (l *Lister) List(ctx context.Context, authorID string) ([]dto.AudiobookDescriptor, error) {
	books, err := l.lister.List(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, errs.NotFoundf("no audiobooks found")
	}

	return l.describeAll(ctx, books), nil
}

// ListByAuthor returns an author's raw records, without resolving blob data.
// Serves the authenticated "my audiobooks" view.
func (l *Lister) ListByAuthor(ctx context.Context, authorID string) ([]model.Audiobook, error) {
	books, err := l.lister.List(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, errs.NotFoundf("no audiobooks found for this author")
	}

	return books, nil
}

func (l *Lister) ListByCategory(ctx context.Context, category string) ([]dto.AudiobookDescriptor, error) {
	if category == "" {
		return nil, errs.Validationf("category parameter is required")
	}

	books, err := l.lister.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, errs.NotFoundf("no audiobooks found for category: %s", category)
	}

	return l.describeAll(ctx, books), nil
}

func (l *Lister) Categories(ctx context.Context) ([]string, error) {
	return l.lister.Categories(ctx)
}

func (l *Lister) Subcategories(ctx context.Context) ([]string, error) {
	return l.lister.Subcategories(ctx)
}

func (l *Lister) describeAll(ctx context.Context, books []model.Audiobook) []dto.AudiobookDescriptor {
	descriptors := make([]dto.AudiobookDescriptor, 0, len(books))
	for i := range books {
		descriptors = append(descriptors, l.describe(ctx, &books[i]))
	}

	return descriptors
}

func (l *Lister) describe(ctx context.Context, book *model.Audiobook) dto.AudiobookDescriptor {
	descriptor := dto.AudiobookDescriptor{
		ID:         book.ID,
		Author:     book.AuthorID,
		AuthorName: authorNameOrUnknown(book.AuthorName),
		Title:      book.Title,
		Rating:     book.AverageRating,
	}

	if book.CoverImage != "" {
		if _, data, err := l.files.ReadAll(ctx, book.CoverImage); err == nil {
			encoded := base64.StdEncoding.EncodeToString(data)
			descriptor.CoverImageData = &encoded
		} else {
			logger.Warn("failed to fetch cover image", "id", book.ID, "name", book.CoverImage, "err", err)
		}
	}

	if book.AudioFile != "" {
		if _, data, err := l.files.ReadAll(ctx, book.AudioFile); err == nil {
			encoded := base64.StdEncoding.EncodeToString(data)
			descriptor.AudioData = &encoded
		} else {
			logger.Warn("failed to fetch audio file", "id", book.ID, "name", book.AudioFile, "err", err)
		}
	}

	return descriptor
}

func authorNameOrUnknown(name string) string {
	if name == "" {
		return "Unknown"
	}

	return name
}
