package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

const defaultFetchLatency = time.Second

// DomainStore is the single in-memory owner of users, todos and the session.
//
// Reads take mu shared. Mutations take writeMu for their whole duration and
// mu exclusively while touching state, then notify observers after mu is
// released. Observers therefore see changes in mutation order and may read
// the store, but must not mutate it from inside the callback.
type DomainStore struct {
	writeMu sync.Mutex
	mu      sync.RWMutex

	users      []domain.User
	todos      []domain.Todo
	current    *domain.User
	inflight   int
	nextUserID int64
	nextTodoID int64

	obsMu     sync.RWMutex
	observers []observerEntry
	nextObsID int

	fetchLatency time.Duration
	now          func() time.Time
	log          zerolog.Logger
}

type observerEntry struct {
	id int
	fn ports.Observer
}

// StoreOption customises a DomainStore at construction time.
type StoreOption func(*DomainStore)

// WithFetchLatency sets the simulated round trip of FetchUsers.
func WithFetchLatency(d time.Duration) StoreOption {
	return func(s *DomainStore) {
		if d >= 0 {
			s.fetchLatency = d
		}
	}
}

// WithClock replaces the time source used for todo timestamps and changes.
func WithClock(now func() time.Time) StoreOption {
	return func(s *DomainStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithoutSeed starts the store empty instead of with the demo fixtures.
func WithoutSeed() StoreOption {
	return func(s *DomainStore) {
		s.users = nil
		s.todos = nil
		s.nextUserID = 1
		s.nextTodoID = 1
	}
}

// NewDomainStore returns a store seeded with the demo users and todos.
func NewDomainStore(log zerolog.Logger, opts ...StoreOption) *DomainStore {
	s := &DomainStore{
		users:        seedUsers(),
		todos:        seedTodos(),
		fetchLatency: defaultFetchLatency,
		now:          func() time.Time { return time.Now().UTC() },
		log:          log,
	}
	s.nextUserID = maxUserID(s.users) + 1
	s.nextTodoID = maxTodoID(s.todos) + 1
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers o for every future change and returns a function that
// removes it again.
func (s *DomainStore) Subscribe(o ports.Observer) (unsubscribe func()) {
	s.obsMu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers = append(s.observers, observerEntry{id: id, fn: o})
	s.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.obsMu.Lock()
			for i, e := range s.observers {
				if e.id == id {
					s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
					break
				}
			}
			s.obsMu.Unlock()
		})
	}
}

// emit must be called with writeMu held and mu released.
func (s *DomainStore) emit(kind domain.ChangeKind, entityID int64) {
	change := domain.NewChange(kind, entityID, s.now())

	s.obsMu.RLock()
	observers := append([]observerEntry(nil), s.observers...)
	s.obsMu.RUnlock()

	for _, e := range observers {
		e.fn(change)
	}
}

// --- Users ---

// AddUser stores a new user under a fresh id and returns it. Names and
// emails are not checked for uniqueness.
func (s *DomainStore) AddUser(in domain.NewUser) domain.User {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	u := domain.User{
		ID:     s.nextUserID,
		Name:   in.Name,
		Email:  in.Email,
		Avatar: in.Avatar,
		Role:   in.Role,
		Status: in.Status,
	}
	s.nextUserID++
	s.users = append(s.users, u)
	s.mu.Unlock()

	s.log.Debug().Int64("user_id", u.ID).Str("role", string(u.Role)).Msg("user added")
	s.emit(domain.ChangeUserAdded, u.ID)
	return u
}

// UpdateUser merges patch into the user with the given id.
func (s *DomainStore) UpdateUser(id int64, patch domain.UserPatch) (domain.User, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	u, err := s.updateUserLocked(id, patch)
	if err != nil {
		return domain.User{}, err
	}
	s.emit(domain.ChangeUserUpdated, id)
	return u, nil
}

func (s *DomainStore) updateUserLocked(id int64, patch domain.UserPatch) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return domain.User{}, fmt.Errorf("update user %d: %w", id, domain.ErrUserNotFound)
	}
	patch.Apply(&s.users[i])
	s.refreshSession(s.users[i])
	return s.users[i], nil
}

// DeleteUser removes and returns the user. Todos owned by the user are kept.
func (s *DomainStore) DeleteUser(id int64) (domain.User, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	i := s.userIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.User{}, fmt.Errorf("delete user %d: %w", id, domain.ErrUserNotFound)
	}
	deleted := s.users[i]
	s.users = append(s.users[:i:i], s.users[i+1:]...)
	s.mu.Unlock()

	s.log.Debug().Int64("user_id", id).Msg("user deleted")
	s.emit(domain.ChangeUserDeleted, id)
	return deleted, nil
}

// ToggleUserStatus flips the user between active and inactive.
func (s *DomainStore) ToggleUserStatus(id int64) (domain.User, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	i := s.userIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.User{}, fmt.Errorf("toggle user %d: %w", id, domain.ErrUserNotFound)
	}
	s.users[i].Status = s.users[i].Status.Toggled()
	u := s.users[i]
	s.refreshSession(u)
	s.mu.Unlock()

	s.emit(domain.ChangeUserStatusToggled, id)
	return u, nil
}

// --- Session ---

// SetCurrentUser replaces the session with a copy of u, or clears it when u
// is nil. The user does not have to exist in the collection.
func (s *DomainStore) SetCurrentUser(u *domain.User) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.current = copyUser(u)
	s.mu.Unlock()

	if u == nil {
		s.emit(domain.ChangeSessionCleared, 0)
		return
	}
	s.emit(domain.ChangeSessionSet, u.ID)
}

// Login starts a session for the user with the given id. It reports false and
// leaves the session untouched when no such user exists.
func (s *DomainStore) Login(userID int64) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	i := s.userIndex(userID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.current = copyUser(&s.users[i])
	s.mu.Unlock()

	s.log.Debug().Int64("user_id", userID).Msg("session started")
	s.emit(domain.ChangeSessionSet, userID)
	return true
}

// Logout clears the session.
func (s *DomainStore) Logout() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.emit(domain.ChangeSessionCleared, 0)
}

// UpdateProfile edits the name and email of the session user, both in the
// session copy and in the collection.
func (s *DomainStore) UpdateProfile(patch domain.ProfilePatch) (domain.User, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current == nil {
		return domain.User{}, domain.ErrNoSession
	}

	u, err := s.updateUserLocked(current.ID, domain.UserPatch{Name: patch.Name, Email: patch.Email})
	if err != nil {
		return domain.User{}, fmt.Errorf("update profile: %w", err)
	}
	s.emit(domain.ChangeProfileUpdated, u.ID)
	return u, nil
}

// refreshSession keeps the session copy in step with its collection entry.
// Caller holds mu.
func (s *DomainStore) refreshSession(u domain.User) {
	if s.current != nil && s.current.ID == u.ID {
		s.current = copyUser(&u)
	}
}

// --- Todos ---

// AddTodo creates a todo owned by the session user.
func (s *DomainStore) AddTodo(text string) (domain.Todo, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	text = strings.TrimSpace(text)

	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return domain.Todo{}, domain.ErrNoSession
	}
	if text == "" {
		s.mu.Unlock()
		return domain.Todo{}, domain.ErrEmptyTodoText
	}
	now := s.now()
	t := domain.Todo{
		ID:        s.nextTodoID,
		Text:      text,
		UserID:    s.current.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextTodoID++
	s.todos = append(s.todos, t)
	s.mu.Unlock()

	s.log.Debug().Int64("todo_id", t.ID).Int64("user_id", t.UserID).Msg("todo added")
	s.emit(domain.ChangeTodoAdded, t.ID)
	return t, nil
}

// ToggleTodo flips the completion flag and bumps UpdatedAt.
func (s *DomainStore) ToggleTodo(id int64) (domain.Todo, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	i := s.todoIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.Todo{}, fmt.Errorf("toggle todo %d: %w", id, domain.ErrTodoNotFound)
	}
	s.todos[i].Completed = !s.todos[i].Completed
	s.todos[i].UpdatedAt = s.now()
	t := s.todos[i]
	s.mu.Unlock()

	s.emit(domain.ChangeTodoToggled, id)
	return t, nil
}

// DeleteTodo removes and returns the todo.
func (s *DomainStore) DeleteTodo(id int64) (domain.Todo, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	i := s.todoIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.Todo{}, fmt.Errorf("delete todo %d: %w", id, domain.ErrTodoNotFound)
	}
	deleted := s.todos[i]
	s.todos = append(s.todos[:i:i], s.todos[i+1:]...)
	s.mu.Unlock()

	s.emit(domain.ChangeTodoDeleted, id)
	return deleted, nil
}

// --- Queries ---

// SearchUsers matches query case-insensitively against name or email.
func (s *DomainStore) SearchUsers(query string) []domain.User {
	q := strings.ToLower(query)
	return s.filterUsers(func(u domain.User) bool {
		return strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q)
	})
}

// UsersByRole returns every user with the given role.
func (s *DomainStore) UsersByRole(role domain.Role) []domain.User {
	return s.filterUsers(func(u domain.User) bool { return u.Role == role })
}

// FetchUsers simulates a backend round trip: the loading flag is raised for
// the configured latency and the current collection is returned. The flag is
// lowered again whether or not ctx is cancelled first.
func (s *DomainStore) FetchUsers(ctx context.Context) ([]domain.User, error) {
	s.adjustLoading(1)
	defer s.adjustLoading(-1)

	timer := time.NewTimer(s.fetchLatency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		err := fmt.Errorf("fetch users: %w", ctx.Err())
		s.log.Error().Err(err).Msg("failed to fetch user list")
		return nil, err
	case <-timer.C:
	}

	return s.Users(), nil
}

func (s *DomainStore) adjustLoading(delta int) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.inflight += delta
	if s.inflight < 0 {
		// a Reset happened while a fetch was in flight
		s.inflight = 0
	}
	s.mu.Unlock()

	s.emit(domain.ChangeLoading, 0)
}

// Reset empties every collection, clears the session and the loading flag,
// and rewinds id generation to 1.
func (s *DomainStore) Reset() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.users = nil
	s.todos = nil
	s.current = nil
	s.inflight = 0
	s.nextUserID = 1
	s.nextTodoID = 1
	s.mu.Unlock()

	s.log.Info().Msg("store reset")
	s.emit(domain.ChangeStoreReset, 0)
}

// --- Derived views ---

// Users returns a copy of the whole collection.
func (s *DomainStore) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User{}, s.users...)
}

// Todos returns a copy of every todo, regardless of owner.
func (s *DomainStore) Todos() []domain.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Todo{}, s.todos...)
}

// CurrentUser returns the session user, if any.
func (s *DomainStore) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.User{}, false
	}
	return *s.current, true
}

func (s *DomainStore) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

func (s *DomainStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

func (s *DomainStore) ActiveUsers() []domain.User {
	return s.filterUsers(func(u domain.User) bool { return u.Status == domain.StatusActive })
}

func (s *DomainStore) AdminUsers() []domain.User {
	return s.UsersByRole(domain.RoleAdmin)
}

func (s *DomainStore) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func (s *DomainStore) ActiveUserCount() int {
	return len(s.ActiveUsers())
}

// UserTodos returns the todos owned by the session user; empty without a
// session.
func (s *DomainStore) UserTodos() []domain.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userTodosLocked()
}

func (s *DomainStore) CompletedTodosCount() int {
	return countTodos(s.UserTodos(), true)
}

func (s *DomainStore) UncompletedTodosCount() int {
	return countTodos(s.UserTodos(), false)
}

// Stats computes every counting view under a single read lock.
func (s *DomainStore) Stats() ports.StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := ports.StoreStats{
		UserCount:  len(s.users),
		IsLoggedIn: s.current != nil,
		Loading:    s.inflight > 0,
	}
	for _, u := range s.users {
		if u.Status == domain.StatusActive {
			st.ActiveUserCount++
		}
		if u.Role == domain.RoleAdmin {
			st.AdminUserCount++
		}
	}
	todos := s.userTodosLocked()
	st.UserTodoCount = len(todos)
	st.CompletedTodosCount = countTodos(todos, true)
	st.UncompletedTodosCount = countTodos(todos, false)
	return st
}

// Snapshot returns a deep copy of the store state.
func (s *DomainStore) Snapshot() ports.StoreSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ports.StoreSnapshot{
		Users:       append([]domain.User{}, s.users...),
		Todos:       append([]domain.Todo{}, s.todos...),
		CurrentUser: copyUser(s.current),
		Loading:     s.inflight > 0,
	}
}

// --- helpers (caller holds mu) ---

func (s *DomainStore) userIndex(id int64) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *DomainStore) todoIndex(id int64) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *DomainStore) userTodosLocked() []domain.Todo {
	out := []domain.Todo{}
	if s.current == nil {
		return out
	}
	for _, t := range s.todos {
		if t.UserID == s.current.ID {
			out = append(out, t)
		}
	}
	return out
}

func (s *DomainStore) filterUsers(keep func(domain.User) bool) []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.User{}
	for _, u := range s.users {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out
}

func countTodos(todos []domain.Todo, completed bool) int {
	n := 0
	for _, t := range todos {
		if t.Completed == completed {
			n++
		}
	}
	return n
}

func copyUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

var _ ports.StoreService = (*DomainStore)(nil)
