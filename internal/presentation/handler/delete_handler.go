package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"audiblebooks/internal/application/usecase/abstraction"
	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{deleter: deleter}
}

// Handle handles DELETE /api/audiobooks/:id requests.
func (h *DeleteHandler) Handle(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		return errorJSON(c, errs.Validationf("missing audiobook id"))
	}

	if err := h.deleter.Delete(c.Request().Context(), id, presentation.IdentityFrom(c)); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Audiobook deleted successfully"})
}
