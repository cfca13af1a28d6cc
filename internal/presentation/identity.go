package presentation

import (
	"github.com/labstack/echo/v4"

	"audiblebooks/internal/domain/entity"
)

// IdentityFrom returns the verified caller stored by the auth middleware. The
// zero Identity means the request was not authenticated.
func IdentityFrom(c echo.Context) entity.Identity {
	ident, _ := c.Get(IdentityKey).(entity.Identity)

	return ident
}
