package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

type changeService struct {
	repo ports.ChangeRepository
	log  zerolog.Logger
}

// NewChangeService returns a ChangeService that writes every change to repo
// and the log. A nil repo means log only.
func NewChangeService(repo ports.ChangeRepository, log zerolog.Logger) ports.ChangeService {
	return &changeService{repo: repo, log: log}
}

func (s *changeService) Record(ctx context.Context, c domain.Change) error {
	s.log.Info().
		Str("change_id", c.ID.String()).
		Str("kind", string(c.Kind)).
		Int64("entity_id", c.EntityID).
		Msg("store changed")

	if s.repo == nil {
		return nil
	}
	if err := s.repo.InsertChange(ctx, c); err != nil {
		return fmt.Errorf("record change %s: %w", c.Kind, err)
	}
	return nil
}
