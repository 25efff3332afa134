package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

type CounterHandler struct {
	counter ports.CounterService
}

func NewCounterHandler(counter ports.CounterService) *CounterHandler {
	return &CounterHandler{counter: counter}
}

// State handles GET /api/counter.
//
// @Summary      Counter state
// @Tags         counter
// @Produce      json
// @Success      200  {object}  domain.CounterState
// @Router       /api/counter [get]
func (h *CounterHandler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, h.counter.State())
}

// @Summary      Increment the counter
// @Tags         counter
// @Produce      json
// @Success      200  {object}  domain.CounterState
// @Router       /api/counter/increment [post]
func (h *CounterHandler) Increment(c echo.Context) error {
	return c.JSON(http.StatusOK, h.counter.Increment())
}

// @Summary      Decrement the counter
// @Tags         counter
// @Produce      json
// @Success      200  {object}  domain.CounterState
// @Router       /api/counter/decrement [post]
func (h *CounterHandler) Decrement(c echo.Context) error {
	return c.JSON(http.StatusOK, h.counter.Decrement())
}

// @Summary      Reset the counter to zero
// @Tags         counter
// @Produce      json
// @Success      200  {object}  domain.CounterState
// @Router       /api/counter/reset [post]
func (h *CounterHandler) Reset(c echo.Context) error {
	return c.JSON(http.StatusOK, h.counter.Reset())
}

// SetCount handles PUT /api/counter.
//
// @Summary      Set the counter
// @Tags         counter
// @Accept       json
// @Produce      json
// @Param        body  body      countRequest  true  "New count"
// @Success      200   {object}  domain.CounterState
// @Failure      422   {object}  errorResponse
// @Router       /api/counter [put]
func (h *CounterHandler) SetCount(c echo.Context) error {
	var req countRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.counter.SetCount(*req.Count))
}

// UpdateName handles PUT /api/counter/name.
//
// @Summary      Rename the greeted user
// @Tags         counter
// @Accept       json
// @Produce      json
// @Param        body  body      nameRequest  true  "New name"
// @Success      200   {object}  domain.CounterState
// @Failure      422   {object}  errorResponse
// @Router       /api/counter/name [put]
func (h *CounterHandler) UpdateName(c echo.Context) error {
	var req nameRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.counter.UpdateName(plainText(req.Name)))
}
