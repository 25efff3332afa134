package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

// AppStore holds the console shell state. Only the theme is persisted, and
// only when a PreferenceStore is configured.
type AppStore struct {
	// themeMu orders theme writes so the saved value always matches the last
	// applied one.
	themeMu sync.Mutex
	mu      sync.RWMutex
	state   domain.AppState
	prefs   ports.PreferenceStore
	log     zerolog.Logger
}

// NewAppStore returns the shell state with a light theme. prefs may be nil.
func NewAppStore(prefs ports.PreferenceStore, log zerolog.Logger) *AppStore {
	return &AppStore{
		state: domain.AppState{Theme: domain.ThemeLight, Breadcrumbs: []domain.Breadcrumb{}},
		prefs: prefs,
		log:   log,
	}
}

func (s *AppStore) State() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.Breadcrumbs = append([]domain.Breadcrumb{}, s.state.Breadcrumbs...)
	return st
}

// ToggleSidebar flips the sidebar and returns the new collapsed state.
func (s *AppStore) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SidebarCollapsed = !s.state.SidebarCollapsed
	return s.state.SidebarCollapsed
}

func (s *AppStore) SetSidebarCollapsed(collapsed bool) {
	s.mu.Lock()
	s.state.SidebarCollapsed = collapsed
	s.mu.Unlock()
}

// ToggleTheme switches between light and dark and persists the result.
func (s *AppStore) ToggleTheme(ctx context.Context) domain.Theme {
	s.themeMu.Lock()
	defer s.themeMu.Unlock()

	s.mu.Lock()
	next := domain.ThemeDark
	if s.state.Theme == domain.ThemeDark {
		next = domain.ThemeLight
	}
	s.state.Theme = next
	s.mu.Unlock()

	s.persistTheme(ctx, next)
	return next
}

// SetTheme applies and persists theme.
func (s *AppStore) SetTheme(ctx context.Context, theme domain.Theme) error {
	if !theme.Valid() {
		return domain.ErrInvalidTheme
	}
	s.themeMu.Lock()
	defer s.themeMu.Unlock()

	s.mu.Lock()
	s.state.Theme = theme
	s.mu.Unlock()

	s.persistTheme(ctx, theme)
	return nil
}

// InitTheme restores a previously saved theme. Missing, unreadable or
// unknown values leave the current theme in place.
func (s *AppStore) InitTheme(ctx context.Context) domain.Theme {
	s.themeMu.Lock()
	defer s.themeMu.Unlock()

	if s.prefs != nil {
		v, ok, err := s.prefs.Get(ctx, domain.ThemeKey)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("failed to read saved theme")
		case ok && domain.Theme(v).Valid():
			s.mu.Lock()
			s.state.Theme = domain.Theme(v)
			s.mu.Unlock()
		case ok:
			s.log.Warn().Str("theme", v).Msg("ignoring unknown saved theme")
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Theme
}

func (s *AppStore) persistTheme(ctx context.Context, theme domain.Theme) {
	if s.prefs == nil {
		return
	}
	if err := s.prefs.Set(ctx, domain.ThemeKey, string(theme)); err != nil {
		s.log.Warn().Err(err).Str("theme", string(theme)).Msg("failed to persist theme")
	}
}

func (s *AppStore) SetLoading(loading bool) {
	s.mu.Lock()
	s.state.Loading = loading
	s.mu.Unlock()
}

func (s *AppStore) SetBreadcrumbs(items []domain.Breadcrumb) {
	s.mu.Lock()
	s.state.Breadcrumbs = append([]domain.Breadcrumb{}, items...)
	s.mu.Unlock()
}

func (s *AppStore) AddBreadcrumb(item domain.Breadcrumb) {
	s.mu.Lock()
	s.state.Breadcrumbs = append(s.state.Breadcrumbs, item)
	s.mu.Unlock()
}

func (s *AppStore) ClearBreadcrumbs() {
	s.mu.Lock()
	s.state.Breadcrumbs = []domain.Breadcrumb{}
	s.mu.Unlock()
}

var _ ports.AppService = (*AppStore)(nil)
