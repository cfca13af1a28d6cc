package handler

import (
	"bytes"
	"context"
	"io"

	"audiblebooks/internal/domain/dto"
	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/domain/model"
)

type fakeUploader struct {
	gotIdent entity.Identity
	gotReq   dto.UploadRequest
	book     *model.Audiobook
	err      error
}

func (f *fakeUploader) Upload(_ context.Context, ident entity.Identity,
	req dto.UploadRequest,
) (*model.Audiobook, error) {
	f.gotIdent = ident
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}

	return f.book, nil
}

type fakeGetter struct {
	book *model.Audiobook
	err  error
}

func (f *fakeGetter) GetByID(context.Context, string, entity.Identity) (*model.Audiobook, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.book, nil
}

type fakeRater struct {
	gotID     string
	gotIdent  entity.Identity
	gotRating int
	gotReview string
	summary   dto.RatingSummary
	rating    model.Rating
	err       error
}

func (f *fakeRater) Rate(_ context.Context, id string, ident entity.Identity,
	rating int, review string,
) (dto.RatingSummary, error) {
	f.gotID = id
	f.gotIdent = ident
	f.gotRating = rating
	f.gotReview = review
	if f.err != nil {
		return dto.RatingSummary{}, f.err
	}

	return f.summary, nil
}

func (f *fakeRater) Unrate(_ context.Context, id string, ident entity.Identity) (dto.RatingSummary, error) {
	f.gotID = id
	f.gotIdent = ident
	if f.err != nil {
		return dto.RatingSummary{}, f.err
	}

	return f.summary, nil
}

func (f *fakeRater) RatingOf(_ context.Context, id string, ident entity.Identity) (model.Rating, error) {
	f.gotID = id
	f.gotIdent = ident
	if f.err != nil {
		return model.Rating{}, f.err
	}

	return f.rating, nil
}

type fakeStreamer struct {
	header entity.ObjectHeader
	data   []byte
	err    error
}

func (f *fakeStreamer) Open(context.Context, string) (entity.ObjectHeader, io.ReadCloser, error) {
	if f.err != nil {
		return entity.ObjectHeader{}, nil, f.err
	}

	return f.header, io.NopCloser(bytes.NewReader(f.data)), nil
}

func (f *fakeStreamer) ReadAll(context.Context, string) (entity.ObjectHeader, []byte, error) {
	if f.err != nil {
		return entity.ObjectHeader{}, nil, f.err
	}

	return f.header, f.data, nil
}

var errNotFoundBook = errs.NotFoundf("audiobook not found")
