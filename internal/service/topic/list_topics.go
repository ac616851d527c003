package topic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// ListTopics returns the topics of a level with their word counts.
func (s *Service) ListTopics(ctx context.Context, input ListTopicsInput) ([]domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	topics, err := s.topics.ListByLevel(ctx, input.LevelID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return topics, nil
}
