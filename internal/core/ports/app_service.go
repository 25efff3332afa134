package ports

import (
	"context"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
)

// AppService holds the console shell state.
type AppService interface {
	State() domain.AppState
	ToggleSidebar() bool
	SetSidebarCollapsed(collapsed bool)
	ToggleTheme(ctx context.Context) domain.Theme
	SetTheme(ctx context.Context, theme domain.Theme) error
	InitTheme(ctx context.Context) domain.Theme
	SetLoading(loading bool)
	SetBreadcrumbs(items []domain.Breadcrumb)
	AddBreadcrumb(item domain.Breadcrumb)
	ClearBreadcrumbs()
}

// CounterService is the counter demo.
type CounterService interface {
	State() domain.CounterState
	Increment() domain.CounterState
	Decrement() domain.CounterState
	Reset() domain.CounterState
	SetCount(n int) domain.CounterState
	UpdateName(name string) domain.CounterState
}
