package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/admin-scaffold/demo-backend/internal/api/metrics"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

// maxMockBody caps the credentials payload read from a fake backend request.
const maxMockBody = 16 << 10

// MockHandler exposes the fake auth backend. Domain failures travel inside the
// envelope, so the HTTP status is 200 whenever a route matched.
type MockHandler struct {
	api ports.MockAPI
}

func NewMockHandler(api ports.MockAPI) *MockHandler {
	return &MockHandler{api: api}
}

// Login handles POST /api/login.
//
// @Summary      Log in with a fixture account
// @Tags         mock
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "username and password"
// @Success      200   {object}  ports.Envelope  "code 200 carries {token}, code 201 carries {message}"
// @Failure      413   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/login [post]
func (h *MockHandler) Login(c echo.Context) error {
	return h.dispatch(c, "login")
}

// UserInfo handles GET /api/user/info.
//
// @Summary      Fetch the fixture account owning a token
// @Tags         mock
// @Produce      json
// @Param        authorization  header    string  true  "Fixture token, optionally prefixed with Bearer"
// @Success      200            {object}  ports.Envelope  "code 200 carries the account, code 201 carries {message}"
// @Router       /api/user/info [get]
func (h *MockHandler) UserInfo(c echo.Context) error {
	return h.dispatch(c, "user_info")
}

func (h *MockHandler) dispatch(c echo.Context, endpoint string) error {
	req := c.Request()

	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(http.MaxBytesReader(c.Response(), req.Body, maxMockBody))
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "payload too large")
			}
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		body = b
	}

	env, err := h.api.Dispatch(req.Context(), ports.MockRequest{
		URL:    req.URL.String(),
		Method: req.Method,
		Body:   body,
		Header: req.Header,
	})
	if err != nil {
		return err
	}

	metrics.MockRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(env.Code)).Inc()
	return c.JSON(http.StatusOK, env)
}
