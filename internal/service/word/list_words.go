package word

import (
	"context"
	"fmt"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// ListWords returns all words of a (level, topic) pair.
func (s *Service) ListWords(ctx context.Context, input ListWordsInput) ([]domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	words, err := s.words.ListByTopic(ctx, input.LevelID, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	return words, nil
}

// CountWords returns the number of words stored in a topic.
func (s *Service) CountWords(ctx context.Context, input CountWordsInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	count, err := s.words.CountByTopic(ctx, input.TopicID)
	if err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}

	return count, nil
}
