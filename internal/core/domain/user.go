package domain

import "errors"

// Role is the access level of a console user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// UserStatus is the activation state of a console user.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

// Valid reports whether s is one of the known statuses.
func (s UserStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Toggled returns the opposite status.
func (s UserStatus) Toggled() UserStatus {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrNoSession     = errors.New("no active session")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidStatus = errors.New("invalid status")
)

// User models a person managed by the console. The ID is assigned by the
// store and never changes afterwards.
type User struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Avatar string     `json:"avatar"`
	Role   Role       `json:"role"`
	Status UserStatus `json:"status"`
}

// NewUser carries every User field except the ID.
type NewUser struct {
	Name   string
	Email  string
	Avatar string
	Role   Role
	Status UserStatus
}

// UserPatch holds the fields to merge into an existing user. Nil fields are
// left untouched.
type UserPatch struct {
	Name   *string
	Email  *string
	Avatar *string
	Role   *Role
	Status *UserStatus
}

// ProfilePatch is the subset of UserPatch a session owner may edit.
type ProfilePatch struct {
	Name  *string
	Email *string
}

// Apply merges the non-nil patch fields into u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
}
