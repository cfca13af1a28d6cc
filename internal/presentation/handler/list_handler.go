package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"audiblebooks/internal/application/usecase/abstraction"
	"audiblebooks/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{lister: lister}
}

// HandleList handles GET /api/audiobooks[?authorId=] requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	descriptors, err := h.lister.List(c.Request().Context(), c.QueryParam("authorId"))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    descriptors,
	})
}

// HandleMine handles GET /api/audiobooks/mine for the authenticated author.
func (h *ListHandler) HandleMine(c echo.Context) error {
	ident := presentation.IdentityFrom(c)

	books, err := h.lister.ListByAuthor(c.Request().Context(), ident.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Audiobooks retrieved successfully",
		"audiobooks": books,
	})
}
