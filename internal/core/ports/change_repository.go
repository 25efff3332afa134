package ports

import (
	"context"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
)

// ChangeRepository records store changes to an audit trail.
type ChangeRepository interface {
	InsertChange(ctx context.Context, change domain.Change) error
}

// ChangeService processes store changes taken off the dispatcher queue.
type ChangeService interface {
	Record(ctx context.Context, change domain.Change) error
}
