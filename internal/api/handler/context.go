package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/anderson-nunes/account-service/internal/api/middleware"
)

// ctxToken returns the raw session token stored by the Token middleware, or
// "" when the request carried none. Verification is left to the service.
func ctxToken(c echo.Context) string {
	token, _ := c.Get(middleware.TokenKey).(string)
	return token
}
