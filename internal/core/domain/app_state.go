package domain

import "errors"

// Theme is the console colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeKey is the preference key the theme is persisted under.
const ThemeKey = "theme"

var ErrInvalidTheme = errors.New("invalid theme")

// Valid reports whether t is light or dark.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Breadcrumb is one entry of the navigation trail.
type Breadcrumb struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
}

// AppState is the console shell state.
type AppState struct {
	SidebarCollapsed bool         `json:"sidebar_collapsed"`
	Theme            Theme        `json:"theme"`
	Loading          bool         `json:"loading"`
	Breadcrumbs      []Breadcrumb `json:"breadcrumbs"`
}

// CounterState is the counter demo state plus its derived values.
type CounterState struct {
	Count       int    `json:"count"`
	Name        string `json:"name"`
	DoubleCount int    `json:"double_count"`
	Greeting    string `json:"greeting"`
}
