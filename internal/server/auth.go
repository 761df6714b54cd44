package server

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/labstack/echo/v4"

	"profiletool/internal/core"
)

// AdminToken derives the admin token from a credential pair: the hex SHA-256
// of "user:password". Clients may send the token directly or use Basic auth
// with the underlying credentials.
func AdminToken(user, password string) string {
	sum := sha256.Sum256([]byte(user + ":" + password))
	return hex.EncodeToString(sum[:])
}

// AdminAuthMiddleware guards the admin routes behind a shared-secret token.
// The token is accepted from the X-Admin-Token header, the admin_token query
// parameter, or Basic auth credentials hashed to the same token. Every
// rejection returns the same 401 body so a caller cannot probe whether a
// token is configured.
func AdminAuthMiddleware(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token == "" {
				return unauthorized(c)
			}

			presented := c.Request().Header.Get("X-Admin-Token")
			if presented == "" {
				presented = c.QueryParam("admin_token")
			}
			if presented == "" {
				if user, pass, ok := c.Request().BasicAuth(); ok {
					presented = AdminToken(user, pass)
				}
			}

			if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				return unauthorized(c)
			}
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	appErr := core.NewAuthenticationError("invalid admin credentials")
	return c.JSON(appErr.HTTPStatusCode(), appErr.ToJSON())
}
