package level

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// CreateLevel creates a new level. A name collision yields domain.ErrAlreadyExists.
func (s *Service) CreateLevel(ctx context.Context, input CreateLevelInput) (*domain.Level, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	level, err := s.levels.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}

	s.log.InfoContext(ctx, "level created",
		slog.String("level_id", level.ID.String()),
		slog.String("name", name),
	)

	return level, nil
}
