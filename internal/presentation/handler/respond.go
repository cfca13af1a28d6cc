package handler

import (
	"github.com/labstack/echo/v4"

	"audiblebooks/internal/domain/errs"
	"audiblebooks/pkg/logger"
)

// errorJSON converts any error into a response-safe JSON body. Unclassified
// errors are masked so internals never leak to clients.
func errorJSON(c echo.Context, err error) error {
	status := errs.HTTPStatus(err)
	msg := err.Error()

	if errs.KindOf(err) == errs.KindUnknown {
		logger.Error("unexpected error", "path", c.Path(), "err", err)
		msg = "internal server error"
	}

	return c.JSON(status, echo.Map{"error": msg})
}
