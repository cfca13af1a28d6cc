package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"audiblebooks/internal/application/usecase/abstraction"
	"audiblebooks/internal/presentation"
)

type CategoryHandler struct {
	lister abstraction.Lister
}

func NewCategoryHandler(lister abstraction.Lister) *CategoryHandler {
	return &CategoryHandler{lister: lister}
}

// HandleCategories handles GET /api/audiobooks/categories requests.
func (h *CategoryHandler) HandleCategories(c echo.Context) error {
	categories, err := h.lister.Categories(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, categories)
}

// HandleSubcategories handles GET /api/audiobooks/subcategories requests.
func (h *CategoryHandler) HandleSubcategories(c echo.Context) error {
	subcategories, err := h.lister.Subcategories(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, subcategories)
}

// HandleByCategory handles GET /api/audiobooks/category/:category requests.
func (h *CategoryHandler) HandleByCategory(c echo.Context) error {
	category := c.Param(presentation.CategoryParam)
	if decoded, err := url.PathUnescape(category); err == nil {
		category = decoded
	}

	descriptors, err := h.lister.ListByCategory(c.Request().Context(), category)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    descriptors,
	})
}
