package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

// AppHandler exposes the console shell state: sidebar, theme, global loading
// flag and breadcrumbs.
type AppHandler struct {
	app ports.AppService
}

func NewAppHandler(app ports.AppService) *AppHandler {
	return &AppHandler{app: app}
}

// State handles GET /api/app.
//
// @Summary      Shell state
// @Tags         app
// @Produce      json
// @Success      200  {object}  domain.AppState
// @Router       /api/app [get]
func (h *AppHandler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, h.app.State())
}

// ToggleSidebar handles POST /api/app/sidebar/toggle.
//
// @Summary      Collapse or expand the sidebar
// @Tags         app
// @Produce      json
// @Success      200  {object}  sidebarResponse
// @Router       /api/app/sidebar/toggle [post]
func (h *AppHandler) ToggleSidebar(c echo.Context) error {
	return c.JSON(http.StatusOK, sidebarResponse{Collapsed: h.app.ToggleSidebar()})
}

// SetSidebar handles PUT /api/app/sidebar.
//
// @Summary      Set the sidebar state
// @Tags         app
// @Accept       json
// @Produce      json
// @Param        body  body      sidebarRequest  true  "Collapsed flag"
// @Success      200   {object}  sidebarResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/app/sidebar [put]
func (h *AppHandler) SetSidebar(c echo.Context) error {
	var req sidebarRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	h.app.SetSidebarCollapsed(*req.Collapsed)
	return c.JSON(http.StatusOK, sidebarResponse{Collapsed: *req.Collapsed})
}

// ToggleTheme handles POST /api/app/theme/toggle.
//
// @Summary      Switch between light and dark
// @Tags         app
// @Produce      json
// @Success      200  {object}  themeResponse
// @Router       /api/app/theme/toggle [post]
func (h *AppHandler) ToggleTheme(c echo.Context) error {
	return c.JSON(http.StatusOK, themeResponse{Theme: h.app.ToggleTheme(c.Request().Context())})
}

// SetTheme handles PUT /api/app/theme.
//
// @Summary      Set the theme
// @Tags         app
// @Accept       json
// @Produce      json
// @Param        body  body      themeRequest  true  "light or dark"
// @Success      200   {object}  themeResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/app/theme [put]
func (h *AppHandler) SetTheme(c echo.Context) error {
	var req themeRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	theme := domain.Theme(req.Theme)
	if err := h.app.SetTheme(c.Request().Context(), theme); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: theme})
}

// SetLoading handles PUT /api/app/loading.
//
// @Summary      Set the global loading flag
// @Tags         app
// @Accept       json
// @Produce      json
// @Param        body  body      loadingRequest  true  "Loading flag"
// @Success      200   {object}  domain.AppState
// @Failure      422   {object}  errorResponse
// @Router       /api/app/loading [put]
func (h *AppHandler) SetLoading(c echo.Context) error {
	var req loadingRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	h.app.SetLoading(*req.Loading)
	return c.JSON(http.StatusOK, h.app.State())
}

// SetBreadcrumbs handles PUT /api/app/breadcrumbs.
//
// @Summary      Replace the breadcrumb trail
// @Tags         app
// @Accept       json
// @Produce      json
// @Param        body  body      breadcrumbsRequest  true  "Breadcrumb items"
// @Success      200   {object}  domain.AppState
// @Failure      422   {object}  errorResponse
// @Router       /api/app/breadcrumbs [put]
func (h *AppHandler) SetBreadcrumbs(c echo.Context) error {
	var req breadcrumbsRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	items := make([]domain.Breadcrumb, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.Breadcrumb{Name: plainText(it.Name), Path: it.Path})
	}
	h.app.SetBreadcrumbs(items)
	return c.JSON(http.StatusOK, h.app.State())
}

// AddBreadcrumb handles POST /api/app/breadcrumbs.
//
// @Summary      Append a breadcrumb
// @Tags         app
// @Accept       json
// @Produce      json
// @Param        body  body      breadcrumbRequest  true  "Breadcrumb"
// @Success      200   {object}  domain.AppState
// @Failure      422   {object}  errorResponse
// @Router       /api/app/breadcrumbs [post]
func (h *AppHandler) AddBreadcrumb(c echo.Context) error {
	var req breadcrumbRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	h.app.AddBreadcrumb(domain.Breadcrumb{Name: plainText(req.Name), Path: req.Path})
	return c.JSON(http.StatusOK, h.app.State())
}

// ClearBreadcrumbs handles DELETE /api/app/breadcrumbs.
//
// @Summary      Clear the breadcrumb trail
// @Tags         app
// @Success      204
// @Router       /api/app/breadcrumbs [delete]
func (h *AppHandler) ClearBreadcrumbs(c echo.Context) error {
	h.app.ClearBreadcrumbs()
	return c.NoContent(http.StatusNoContent)
}
