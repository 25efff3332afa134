package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

// TodoHandler handles the todo list of the logged-in user.
type TodoHandler struct {
	store ports.StoreService
}

func NewTodoHandler(store ports.StoreService) *TodoHandler {
	return &TodoHandler{store: store}
}

// List handles GET /api/todos.
//
// @Summary      Todos of the logged-in user
// @Tags         todos
// @Produce      json
// @Success      200  {object}  todosResponse
// @Router       /api/todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	items := h.store.UserTodos()
	resp := todosResponse{Items: items}
	for _, t := range items {
		if t.Completed {
			resp.Completed++
		} else {
			resp.Uncompleted++
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/todos.
//
// @Summary      Add a todo for the logged-in user
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      createTodoRequest  true  "Todo text"
// @Success      201   {object}  domain.Todo
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	var req createTodoRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	t, err := h.store.AddTodo(plainText(req.Text))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, t)
}

// Toggle handles POST /api/todos/:id/toggle.
//
// @Summary      Flip a todo between done and not done
// @Tags         todos
// @Produce      json
// @Param        id   path      int  true  "Todo id"
// @Success      200  {object}  domain.Todo
// @Failure      404  {object}  errorResponse
// @Router       /api/todos/{id}/toggle [post]
func (h *TodoHandler) Toggle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	t, err := h.store.ToggleTodo(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /api/todos/:id.
//
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Param        id   path      int  true  "Todo id"
// @Success      200  {object}  domain.Todo
// @Failure      404  {object}  errorResponse
// @Router       /api/todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	t, err := h.store.DeleteTodo(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}
