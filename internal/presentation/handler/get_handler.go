package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"audiblebooks/internal/application/usecase/abstraction"
	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{getter: getter}
}

// Handle handles GET /api/audiobooks/:id requests.
func (h *GetHandler) Handle(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		return errorJSON(c, errs.Validationf("missing audiobook id"))
	}

	book, err := h.getter.GetByID(c.Request().Context(), id, presentation.IdentityFrom(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Audiobook retrieved successfully",
		"audiobook": book,
	})
}
