package word

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/wortschatz-backend/internal/config"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

type wordRepo interface {
	ListByTopic(ctx context.Context, levelID, topicID uuid.UUID) ([]domain.Word, error)
	CountByTopic(ctx context.Context, topicID uuid.UUID) (int, error)
	ExistsInTopic(ctx context.Context, german string, levelID, topicID uuid.UUID) (bool, error)
	LockTopic(ctx context.Context, topicID uuid.UUID) error
	Create(ctx context.Context, in domain.WordInput) (*domain.Word, error)
}

type levelRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Level, error)
}

type topicRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides word listing and bulk import.
type Service struct {
	words  wordRepo
	levels levelRepo
	topics topicRepo
	tx     txManager
	cfg    config.ImportConfig
	log    *slog.Logger
}

// NewService creates a new Word service.
func NewService(
	log *slog.Logger,
	words wordRepo,
	levels levelRepo,
	topics topicRepo,
	tx txManager,
	cfg config.ImportConfig,
) *Service {
	return &Service{
		words:  words,
		levels: levels,
		topics: topics,
		tx:     tx,
		cfg:    cfg,
		log:    log.With("service", "word"),
	}
}
