package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

// SessionHandler drives the single-user session of the store.
type SessionHandler struct {
	store ports.StoreService
}

func NewSessionHandler(store ports.StoreService) *SessionHandler {
	return &SessionHandler{store: store}
}

// Get handles GET /api/session.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.current())
}

// Login handles POST /api/session. Logging in again replaces the session.
//
// @Summary      Start a session as a store user
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "User to log in as"
// @Success      200   {object}  sessionResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/session [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if !h.store.Login(req.UserID) {
		return fmt.Errorf("login %d: %w", req.UserID, domain.ErrUserNotFound)
	}
	return c.JSON(http.StatusOK, h.current())
}

// Logout handles DELETE /api/session.
//
// @Summary      End the session
// @Tags         session
// @Success      204
// @Router       /api/session [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.store.Logout()
	return c.NoContent(http.StatusNoContent)
}

// UpdateProfile handles PATCH /api/session/profile.
//
// @Summary      Edit the logged-in user's name or email
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/session/profile [patch]
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var req profileRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	name, err := cleanName(req.Name)
	if err != nil {
		return err
	}
	u, err := h.store.UpdateProfile(domain.ProfilePatch{Name: name, Email: req.Email})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *SessionHandler) current() sessionResponse {
	u, ok := h.store.CurrentUser()
	if !ok {
		return sessionResponse{}
	}
	return sessionResponse{User: &u, IsLoggedIn: true}
}
