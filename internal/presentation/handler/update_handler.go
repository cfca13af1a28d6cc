package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"audiblebooks/internal/application/usecase/abstraction"
	"audiblebooks/internal/domain/dto"
	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/presentation"
)

type UpdateHandler struct {
	updater abstraction.Updater
}

func NewUpdateHandler(updater abstraction.Updater) *UpdateHandler {
	return &UpdateHandler{updater: updater}
}

// Handle handles PUT /api/audiobooks/:id requests. Only fields present in the
// form are changed; absent fields are left untouched.
func (h *UpdateHandler) Handle(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		return errorJSON(c, errs.Validationf("missing audiobook id"))
	}

	form, err := c.MultipartForm()
	if err != nil {
		return errorJSON(c, errs.Validationf("invalid multipart form: %v", err))
	}

	req := dto.UpdateRequest{
		Title:         optionalValue(form, "title"),
		Description:   optionalValue(form, "description"),
		Categories:    form.Value["categories"],
		Subcategories: form.Value["subcategories"],
		Genre:         optionalValue(form, "genre"),
	}

	if req.Audio, err = partFromForm(form, audioFormKey); err != nil {
		return errorJSON(c, err)
	}
	if req.Cover, err = partFromForm(form, imageFormKey); err != nil {
		return errorJSON(c, err)
	}

	book, err := h.updater.Update(c.Request().Context(), id, presentation.IdentityFrom(c), req)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Audiobook updated successfully",
		"audiobook": book,
	})
}

// optionalValue distinguishes "field absent" (nil) from "field set to empty".
func optionalValue(form *multipart.Form, key string) *string {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}

	return &values[0]
}
