package handler

import (
	"github.com/admin-scaffold/demo-backend/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Users ---

type createUserRequest struct {
	Name   string `json:"name"   validate:"required,notblank"`
	Email  string `json:"email"  validate:"required,email"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"   validate:"required,oneof=admin user guest"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type updateUserRequest struct {
	Name   *string `json:"name"   validate:"omitempty,notblank"`
	Email  *string `json:"email"  validate:"omitempty,email"`
	Avatar *string `json:"avatar"`
	Role   *string `json:"role"   validate:"omitempty,oneof=admin user guest"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type usersResponse struct {
	Items []domain.User `json:"items"`
	Total int           `json:"total"`
}

// --- Session ---

type loginRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

type profileRequest struct {
	Name  *string `json:"name"  validate:"omitempty,notblank"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type sessionResponse struct {
	User       *domain.User `json:"user"`
	IsLoggedIn bool         `json:"is_logged_in"`
}

// --- Todos ---

type createTodoRequest struct {
	Text string `json:"text" validate:"required"`
}

type todosResponse struct {
	Items       []domain.Todo `json:"items"`
	Completed   int           `json:"completed"`
	Uncompleted int           `json:"uncompleted"`
}

// --- App shell ---

type sidebarRequest struct {
	Collapsed *bool `json:"collapsed" validate:"required"`
}

type sidebarResponse struct {
	Collapsed bool `json:"collapsed"`
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type themeResponse struct {
	Theme domain.Theme `json:"theme"`
}

type loadingRequest struct {
	Loading *bool `json:"loading" validate:"required"`
}

type breadcrumbRequest struct {
	Name string `json:"name" validate:"required"`
	Path string `json:"path"`
}

type breadcrumbsRequest struct {
	Items []breadcrumbRequest `json:"items" validate:"dive"`
}

// --- Counter ---

type countRequest struct {
	Count *int `json:"count" validate:"required"`
}

type nameRequest struct {
	Name string `json:"name" validate:"required"`
}
