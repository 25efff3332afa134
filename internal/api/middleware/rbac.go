package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireButton lets the request through only when the account injected by
// Auth carries every listed button permission.
func RequireButton(buttons ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, ok := AccountFrom(c)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			for _, b := range buttons {
				if !account.HasButton(b) {
					return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
				}
			}
			return next(c)
		}
	}
}
