package service

import (
	"time"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
)

func seedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "张三", Email: "zhangsan@example.com", Avatar: "👨‍💼", Role: domain.RoleAdmin, Status: domain.StatusActive},
		{ID: 2, Name: "李四", Email: "lisi@example.com", Avatar: "👩‍💼", Role: domain.RoleUser, Status: domain.StatusActive},
		{ID: 3, Name: "王五", Email: "wangwu@example.com", Avatar: "🧑‍💼", Role: domain.RoleGuest, Status: domain.StatusInactive},
	}
}

func seedTodos() []domain.Todo {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	return []domain.Todo{
		{ID: 1, Text: "学习 Pinia 状态管理", Completed: true, UserID: 1, CreatedAt: day(1), UpdatedAt: day(1)},
		{ID: 2, Text: "完成 Vue 项目", Completed: false, UserID: 1, CreatedAt: day(2), UpdatedAt: day(2)},
		{ID: 3, Text: "阅读文档", Completed: true, UserID: 2, CreatedAt: day(3), UpdatedAt: day(3)},
		{ID: 4, Text: "编写代码", Completed: false, UserID: 2, CreatedAt: day(4), UpdatedAt: day(4)},
	}
}

// maxUserID returns 0 for an empty slice so id generation starts at 1.
func maxUserID(users []domain.User) int64 {
	var top int64
	for _, u := range users {
		if u.ID > top {
			top = u.ID
		}
	}
	return top
}

func maxTodoID(todos []domain.Todo) int64 {
	var top int64
	for _, t := range todos {
		if t.ID > top {
			top = t.ID
		}
	}
	return top
}
