package domain

import (
	"errors"
	"time"
)

var (
	ErrTodoNotFound  = errors.New("todo not found")
	ErrEmptyTodoText = errors.New("todo text is empty")
)

// Todo is a task owned by a user. UserID may point at a deleted user; the
// store does not cascade deletes.
type Todo struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
