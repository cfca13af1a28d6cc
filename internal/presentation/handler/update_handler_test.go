package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audiblebooks/internal/domain/dto"
	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/domain/model"
	"audiblebooks/internal/presentation"
)

type fakeUpdater struct {
	gotID  string
	gotReq dto.UpdateRequest
	book   *model.Audiobook
	err    error
}

func (f *fakeUpdater) Update(_ context.Context, id string, _ entity.Identity,
	req dto.UpdateRequest,
) (*model.Audiobook, error) {
	f.gotID = id
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}

	return f.book, nil
}

type fakeDeleter struct {
	gotID string
	err   error
}

func (f *fakeDeleter) Delete(_ context.Context, id string, _ entity.Identity) error {
	f.gotID = id

	return f.err
}

func updateContext(t *testing.T, fields map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/audiobooks/book-1", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	c := echo.New().NewContext(req, rec)
	c.SetParamNames(presentation.IDParam)
	c.SetParamValues("book-1")
	c.Set(presentation.IdentityKey, entity.Identity{ID: "a1", Role: entity.RoleAuthor})

	return c, rec
}

func TestUpdateHandlerPartialFields(t *testing.T) {
	updater := &fakeUpdater{book: &model.Audiobook{ID: "book-1", Title: "New Title"}}
	h := NewUpdateHandler(updater)

	c, rec := updateContext(t, map[string]string{"title": "New Title"})
	require.NoError(t, h.Handle(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "book-1", updater.gotID)
	require.NotNil(t, updater.gotReq.Title)
	assert.Equal(t, "New Title", *updater.gotReq.Title)
	assert.Nil(t, updater.gotReq.Description, "absent fields must stay nil")
	assert.Nil(t, updater.gotReq.Genre)
	assert.Nil(t, updater.gotReq.Audio)
	assert.Nil(t, updater.gotReq.Cover)
}

func TestUpdateHandlerForbidden(t *testing.T) {
	h := NewUpdateHandler(&fakeUpdater{err: errs.Authorizationf("you are not authorized to update this audiobook")})

	c, rec := updateContext(t, map[string]string{"title": "hijacked"})
	require.NoError(t, h.Handle(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteHandler(t *testing.T) {
	deleter := &fakeDeleter{}
	h := NewDeleteHandler(deleter)

	req := httptest.NewRequest(http.MethodDelete, "/api/audiobooks/book-1", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames(presentation.IDParam)
	c.SetParamValues("book-1")
	c.Set(presentation.IdentityKey, entity.Identity{ID: "a1", Role: entity.RoleAuthor})

	require.NoError(t, h.Handle(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "book-1", deleter.gotID)
}

func TestDeleteHandlerNotFound(t *testing.T) {
	h := NewDeleteHandler(&fakeDeleter{err: errNotFoundBook})

	req := httptest.NewRequest(http.MethodDelete, "/api/audiobooks/missing", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames(presentation.IDParam)
	c.SetParamValues("missing")
	c.Set(presentation.IdentityKey, entity.Identity{ID: "a1", Role: entity.RoleAuthor})

	require.NoError(t, h.Handle(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
