package topic

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

type topicRepo interface {
	ListByLevel(ctx context.Context, levelID uuid.UUID) ([]domain.Topic, error)
	ExistsByName(ctx context.Context, levelID uuid.UUID, name string) (bool, error)
	Create(ctx context.Context, levelID uuid.UUID, name string) (*domain.Topic, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type levelRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Level, error)
}

// MaxNameLength is the longest accepted topic name, in characters.
const MaxNameLength = 100

// Service provides topic management operations.
type Service struct {
	topics topicRepo
	levels levelRepo
	log    *slog.Logger
}

// NewService creates a new Topic service.
func NewService(log *slog.Logger, topics topicRepo, levels levelRepo) *Service {
	return &Service{
		topics: topics,
		levels: levels,
		log:    log.With("service", "topic"),
	}
}
