package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
	"github.com/admin-scaffold/demo-backend/internal/core/service"
)

// accountKey is the echo.Context key holding the authenticated fixture account.
const accountKey = "account"

// Auth resolves the authorization header through the fake backend and
// injects the matching account into context.
func Auth(api ports.MockAPI) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := service.TokenFromHeader(c.Request().Header)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			res := api.Profile(c.Request().Context(), token)
			account, ok := res.Value()
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, res.Message())
			}

			c.Set(accountKey, account)
			return next(c)
		}
	}
}

// AccountFrom returns the account injected by Auth.
func AccountFrom(c echo.Context) (domain.Account, bool) {
	a, ok := c.Get(accountKey).(domain.Account)
	return a, ok
}
