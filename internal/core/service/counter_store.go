package service

import (
	"fmt"
	"sync"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

const defaultCounterName = "用户"

// CounterStore backs the counter demo page.
type CounterStore struct {
	mu    sync.Mutex
	count int
	name  string
}

func NewCounterStore() *CounterStore {
	return &CounterStore{name: defaultCounterName}
}

// State returns the counter together with its derived values.
func (s *CounterStore) State() domain.CounterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *CounterStore) stateLocked() domain.CounterState {
	return domain.CounterState{
		Count:       s.count,
		Name:        s.name,
		DoubleCount: s.count * 2,
		Greeting:    fmt.Sprintf("你好，%s！", s.name),
	}
}

func (s *CounterStore) update(fn func()) domain.CounterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
	return s.stateLocked()
}

func (s *CounterStore) Increment() domain.CounterState {
	return s.update(func() { s.count++ })
}

func (s *CounterStore) Decrement() domain.CounterState {
	return s.update(func() { s.count-- })
}

// Reset zeroes the count; the name is kept.
func (s *CounterStore) Reset() domain.CounterState {
	return s.update(func() { s.count = 0 })
}

func (s *CounterStore) SetCount(n int) domain.CounterState {
	return s.update(func() { s.count = n })
}

func (s *CounterStore) UpdateName(name string) domain.CounterState {
	return s.update(func() { s.name = name })
}

var _ ports.CounterService = (*CounterStore)(nil)
