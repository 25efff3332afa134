package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChangeKind names the mutation that produced a Change.
type ChangeKind string

const (
	ChangeUserAdded         ChangeKind = "user.added"
	ChangeUserUpdated       ChangeKind = "user.updated"
	ChangeUserDeleted       ChangeKind = "user.deleted"
	ChangeUserStatusToggled ChangeKind = "user.status_toggled"
	ChangeSessionSet        ChangeKind = "session.set"
	ChangeSessionCleared    ChangeKind = "session.cleared"
	ChangeProfileUpdated    ChangeKind = "session.profile_updated"
	ChangeTodoAdded         ChangeKind = "todo.added"
	ChangeTodoToggled       ChangeKind = "todo.toggled"
	ChangeTodoDeleted       ChangeKind = "todo.deleted"
	ChangeLoading           ChangeKind = "store.loading"
	ChangeStoreReset        ChangeKind = "store.reset"
)

// Change is emitted to store observers after every applied mutation.
type Change struct {
	ID       uuid.UUID  `json:"id"`
	Kind     ChangeKind `json:"kind"`
	EntityID int64      `json:"entity_id,omitempty"`
	At       time.Time  `json:"at"`
}

// NewChange stamps a change with a fresh id.
func NewChange(kind ChangeKind, entityID int64, at time.Time) Change {
	return Change{ID: uuid.New(), Kind: kind, EntityID: entityID, At: at}
}
