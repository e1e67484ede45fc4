package tokens

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// AdminTokenMiddleware guards destructive and user-management routes.
// The token travels in its own header because Authorization already
// carries the user's bearer token on these routes. Passthrough when no
// admin token is configured.
func AdminTokenMiddleware(token string) echo.MiddlewareFunc {
	if token == "" {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:X-Admin-Token",
		Validator: func(auth string, c echo.Context) (bool, error) {
			return auth == token, nil
		},
	})
}
