package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/admin-scaffold/demo-backend/internal/api/metrics"
	"github.com/admin-scaffold/demo-backend/internal/core/domain"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

// UserHandler handles HTTP requests for the user collection of the store.
type UserHandler struct {
	store ports.StoreService
}

func NewUserHandler(store ports.StoreService) *UserHandler {
	return &UserHandler{store: store}
}

// List handles GET /api/users.
//
// Filters combine: q narrows by name or email, role by role, status by status.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        q       query     string  false  "Case-insensitive match on name or email"
// @Param        role    query     string  false  "admin, user or guest"
// @Param        status  query     string  false  "active or inactive"
// @Success      200     {object}  usersResponse
// @Failure      422     {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users := h.store.Users()

	if q := c.QueryParam("q"); q != "" {
		users = intersect(users, h.store.SearchUsers(q))
	}

	if r := c.QueryParam("role"); r != "" {
		role := domain.Role(r)
		if !role.Valid() {
			return domain.ErrInvalidRole
		}
		users = intersect(users, h.store.UsersByRole(role))
	}

	switch s := domain.UserStatus(c.QueryParam("status")); {
	case s == "":
	case s == domain.StatusActive:
		users = intersect(users, h.store.ActiveUsers())
	case s.Valid():
		users = keep(users, func(u domain.User) bool { return u.Status == s })
	default:
		return domain.ErrInvalidStatus
	}

	return c.JSON(http.StatusOK, usersResponse{Items: users, Total: len(users)})
}

// Admins handles GET /api/users/admins.
//
// @Summary      List admin users
// @Tags         users
// @Produce      json
// @Success      200  {object}  usersResponse
// @Router       /api/users/admins [get]
func (h *UserHandler) Admins(c echo.Context) error {
	users := h.store.AdminUsers()
	return c.JSON(http.StatusOK, usersResponse{Items: users, Total: len(users)})
}

// Fetch handles GET /api/users/fetch. It goes through the simulated network
// round trip and raises the store loading flag while waiting.
//
// @Summary      Fetch users with simulated latency
// @Tags         users
// @Produce      json
// @Success      200  {object}  usersResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/users/fetch [get]
func (h *UserHandler) Fetch(c echo.Context) error {
	start := time.Now()
	users, err := h.store.FetchUsers(c.Request().Context())

	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.FetchUsersDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Items: users, Total: len(users)})
}

// Create handles POST /api/users.
//
// @Summary      Add a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     FixtureToken
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	status := domain.UserStatus(req.Status)
	if status == "" {
		status = domain.StatusActive
	}

	name, err := cleanName(&req.Name)
	if err != nil {
		return err
	}

	u := h.store.AddUser(domain.NewUser{
		Name:   *name,
		Email:  req.Email,
		Avatar: plainText(req.Avatar),
		Role:   domain.Role(req.Role),
		Status: status,
	})
	return c.JSON(http.StatusCreated, u)
}

// Update handles PATCH /api/users/:id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     FixtureToken
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	patch, err := req.patch()
	if err != nil {
		return err
	}
	u, err := h.store.UpdateUser(id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /api/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     FixtureToken
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	u, err := h.store.DeleteUser(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// ToggleStatus handles POST /api/users/:id/toggle-status.
//
// @Summary      Flip a user between active and inactive
// @Tags         users
// @Produce      json
// @Security     FixtureToken
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id}/toggle-status [post]
func (h *UserHandler) ToggleStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	u, err := h.store.ToggleUserStatus(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (r updateUserRequest) patch() (domain.UserPatch, error) {
	name, err := cleanName(r.Name)
	if err != nil {
		return domain.UserPatch{}, err
	}
	p := domain.UserPatch{Name: name, Email: r.Email, Avatar: plainTextPtr(r.Avatar)}
	if r.Role != nil {
		role := domain.Role(*r.Role)
		p.Role = &role
	}
	if r.Status != nil {
		status := domain.UserStatus(*r.Status)
		p.Status = &status
	}
	return p, nil
}

// intersect keeps the users of base whose id also appears in other, in base order.
func intersect(base, other []domain.User) []domain.User {
	ids := make(map[int64]struct{}, len(other))
	for _, u := range other {
		ids[u.ID] = struct{}{}
	}
	return keep(base, func(u domain.User) bool {
		_, ok := ids[u.ID]
		return ok
	})
}

func keep(users []domain.User, fn func(domain.User) bool) []domain.User {
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if fn(u) {
			out = append(out, u)
		}
	}
	return out
}
