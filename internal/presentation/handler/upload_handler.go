package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"audiblebooks/internal/application/usecase/abstraction"
	"audiblebooks/internal/domain/dto"
	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/presentation"
)

const (
	audioFormKey = "audiobook"
	imageFormKey = "image"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Handle accepts a multipart form with the metadata fields plus the two
// payloads and creates the audiobook.
func (h *UploadHandler) Handle(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return errorJSON(c, errs.Validationf("invalid multipart form: %v", err))
	}

	audio, err := partFromForm(form, audioFormKey)
	if err != nil {
		return errorJSON(c, err)
	}
	cover, err := partFromForm(form, imageFormKey)
	if err != nil {
		return errorJSON(c, err)
	}

	req := dto.UploadRequest{
		Title:         formValue(form, "title"),
		Description:   formValue(form, "description"),
		Categories:    form.Value["categories"],
		Subcategories: form.Value["subcategories"],
		Genre:         formValue(form, "genre"),
		Audio:         audio,
		Cover:         cover,
	}

	book, err := h.uploader.Upload(c.Request().Context(), presentation.IdentityFrom(c), req)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Files and metadata uploaded successfully",
		"id":       book.ID,
		"authorId": book.AuthorID,
	})
}

func formValue(form *multipart.Form, key string) string {
	values := form.Value[key]
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

// partFromForm buffers one uploaded file. A missing part yields nil so the
// usecase decides whether it was required.
func partFromForm(form *multipart.Form, key string) (*entity.Part, error) {
	files := form.File[key]
	if len(files) == 0 {
		return nil, nil
	}

	fh := files[0]
	f, err := fh.Open()
	if err != nil {
		return nil, errs.Validationf("failed to open uploaded %s: %v", key, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errs.Validationf("failed to read uploaded %s: %v", key, err)
	}

	contentType := fh.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}

	return &entity.Part{
		Name:        fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
