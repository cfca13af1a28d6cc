package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"audiblebooks/internal/application/usecase/abstraction"
	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/presentation"
)

type RatingHandler struct {
	rater abstraction.Rater
}

func NewRatingHandler(rater abstraction.Rater) *RatingHandler {
	return &RatingHandler{rater: rater}
}

type rateRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// HandleRate handles POST /api/audiobooks/:id/ratings requests. Rating is an
// upsert: a caller who already rated the book overwrites their entry.
func (h *RatingHandler) HandleRate(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		return errorJSON(c, errs.Validationf("missing audiobook id"))
	}

	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, errs.Validationf("invalid request body"))
	}

	summary, err := h.rater.Rate(c.Request().Context(), id, presentation.IdentityFrom(c), req.Rating, req.Review)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":        "Rating added successfully",
		"average_rating": summary.AverageRating,
		"total_ratings":  summary.TotalRatings,
		"total_count":    summary.TotalCount,
	})
}

// HandleGetRating handles GET /api/audiobooks/:id/ratings requests, returning
// the caller's own rating on the record.
func (h *RatingHandler) HandleGetRating(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		return errorJSON(c, errs.Validationf("missing audiobook id"))
	}

	rating, err := h.rater.RatingOf(c.Request().Context(), id, presentation.IdentityFrom(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"rating": rating.Rating,
		"review": rating.Review,
	})
}

// HandleUnrate handles DELETE /api/audiobooks/:id/ratings requests.
func (h *RatingHandler) HandleUnrate(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		return errorJSON(c, errs.Validationf("missing audiobook id"))
	}

	summary, err := h.rater.Unrate(c.Request().Context(), id, presentation.IdentityFrom(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":        "Rating removed successfully",
		"average_rating": summary.AverageRating,
		"total_ratings":  summary.TotalRatings,
		"total_count":    summary.TotalCount,
	})
}
