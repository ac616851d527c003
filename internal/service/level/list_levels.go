package level

import (
	"context"
	"fmt"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// ListLevels returns all levels ordered by name.
func (s *Service) ListLevels(ctx context.Context) ([]domain.Level, error) {
	levels, err := s.levels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	return levels, nil
}
