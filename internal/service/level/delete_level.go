package level

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteLevel deletes a level together with its topics and words.
func (s *Service) DeleteLevel(ctx context.Context, input DeleteLevelInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.levels.Delete(ctx, input.LevelID); err != nil {
		return fmt.Errorf("delete level: %w", err)
	}

	s.log.InfoContext(ctx, "level deleted",
		slog.String("level_id", input.LevelID.String()),
	)

	return nil
}
