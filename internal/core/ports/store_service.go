package ports

import (
	"context"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
)

// Observer receives every change applied to the store, in mutation order.
type Observer func(change domain.Change)

// StoreStats is a consistent read of every counting view at once.
type StoreStats struct {
	UserCount             int  `json:"user_count"`
	ActiveUserCount       int  `json:"active_user_count"`
	AdminUserCount        int  `json:"admin_user_count"`
	IsLoggedIn            bool `json:"is_logged_in"`
	UserTodoCount         int  `json:"user_todo_count"`
	CompletedTodosCount   int  `json:"completed_todos_count"`
	UncompletedTodosCount int  `json:"uncompleted_todos_count"`
	Loading               bool `json:"loading"`
}

// StoreSnapshot is a deep copy of the whole store state.
type StoreSnapshot struct {
	Users       []domain.User `json:"users"`
	Todos       []domain.Todo `json:"todos"`
	CurrentUser *domain.User  `json:"current_user"`
	Loading     bool          `json:"loading"`
}

// StoreService is the domain store: users, todos, the session and the views
// derived from them.
type StoreService interface {
	AddUser(in domain.NewUser) domain.User
	UpdateUser(id int64, patch domain.UserPatch) (domain.User, error)
	DeleteUser(id int64) (domain.User, error)
	ToggleUserStatus(id int64) (domain.User, error)

	SetCurrentUser(u *domain.User)
	Login(userID int64) bool
	Logout()
	UpdateProfile(patch domain.ProfilePatch) (domain.User, error)

	AddTodo(text string) (domain.Todo, error)
	ToggleTodo(id int64) (domain.Todo, error)
	DeleteTodo(id int64) (domain.Todo, error)

	SearchUsers(query string) []domain.User
	UsersByRole(role domain.Role) []domain.User
	FetchUsers(ctx context.Context) ([]domain.User, error)
	Reset()

	Users() []domain.User
	CurrentUser() (domain.User, bool)
	ActiveUsers() []domain.User
	AdminUsers() []domain.User
	UserTodos() []domain.Todo
	IsLoggedIn() bool
	Stats() StoreStats
	Snapshot() StoreSnapshot

	Subscribe(o Observer) (unsubscribe func())
}
