package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// CreateTopic creates a topic under an existing level. Names are unique per level.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	if _, err := s.levels.GetByID(ctx, input.LevelID); err != nil {
		return nil, fmt.Errorf("get level: %w", err)
	}

	exists, err := s.topics.ExistsByName(ctx, input.LevelID, name)
	if err != nil {
		return nil, fmt.Errorf("check topic name: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("topic %q: %w", name, domain.ErrAlreadyExists)
	}

	topic, err := s.topics.Create(ctx, input.LevelID, name)
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("topic_id", topic.ID.String()),
		slog.String("level_id", input.LevelID.String()),
		slog.String("name", name),
	)

	return topic, nil
}
