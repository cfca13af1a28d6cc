package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"audiblebooks/internal/application/usecase/abstraction"
)

type SearchHandler struct {
	searcher abstraction.Searcher
}

func NewSearchHandler(searcher abstraction.Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// Handle handles GET /api/audiobooks/search?q= requests.
func (h *SearchHandler) Handle(c echo.Context) error {
	books, err := h.searcher.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    books,
	})
}
