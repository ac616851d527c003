package level

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

type levelRepo interface {
	List(ctx context.Context) ([]domain.Level, error)
	Create(ctx context.Context, name string) (*domain.Level, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MaxNameLength is the longest accepted level name, in characters.
const MaxNameLength = 50

// Service provides level management operations.
type Service struct {
	levels levelRepo
	log    *slog.Logger
}

// NewService creates a new Level service.
func NewService(log *slog.Logger, levels levelRepo) *Service {
	return &Service{
		levels: levels,
		log:    log.With("service", "level"),
	}
}
