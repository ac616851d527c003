package topic

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteTopic deletes a topic together with its words.
func (s *Service) DeleteTopic(ctx context.Context, input DeleteTopicInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.topics.Delete(ctx, input.TopicID); err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("topic_id", input.TopicID.String()),
	)

	return nil
}
