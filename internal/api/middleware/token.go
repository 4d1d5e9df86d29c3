package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// TokenKey is the echo context key holding the raw session token.
const TokenKey = "token"

// Token copies the session token from the Authorization header into the
// request context. The header may carry the bare token or "Bearer <token>".
// The token is not verified here; a missing header leaves the key unset.
func Token() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			if header != "" {
				parts := strings.SplitN(header, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
					header = strings.TrimSpace(parts[1])
				}
				c.Set(TokenKey, header)
			}
			return next(c)
		}
	}
}
