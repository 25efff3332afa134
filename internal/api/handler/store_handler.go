package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

// StoreHandler exposes whole-store reads and the reset entry point.
type StoreHandler struct {
	store ports.StoreService
}

func NewStoreHandler(store ports.StoreService) *StoreHandler {
	return &StoreHandler{store: store}
}

// Stats handles GET /api/stats.
//
// @Summary      Derived counters of the store
// @Tags         store
// @Produce      json
// @Success      200  {object}  ports.StoreStats
// @Router       /api/stats [get]
func (h *StoreHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Stats())
}

// Snapshot handles GET /api/store.
//
// @Summary      Full copy of the store state
// @Tags         store
// @Produce      json
// @Success      200  {object}  ports.StoreSnapshot
// @Router       /api/store [get]
func (h *StoreHandler) Snapshot(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Snapshot())
}

// Reset handles POST /api/store/reset. The store ends up empty, not reseeded.
//
// @Summary      Clear every collection and the session
// @Tags         store
// @Security     FixtureToken
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/store/reset [post]
func (h *StoreHandler) Reset(c echo.Context) error {
	h.store.Reset()
	return c.NoContent(http.StatusNoContent)
}
