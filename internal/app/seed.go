package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/service/level"
)

// DefaultLevels are the CEFR tiers the app ships with.
var DefaultLevels = []string{"A1", "A2", "B1", "B2", "C1"}

type levelCreator interface {
	CreateLevel(ctx context.Context, input level.CreateLevelInput) (*domain.Level, error)
}

// SeedLevels creates the named levels, skipping those that already exist.
// It returns how many were created.
func SeedLevels(ctx context.Context, levels levelCreator, names []string, logger *slog.Logger) (int, error) {
	created := 0
	for _, name := range names {
		_, err := levels.CreateLevel(ctx, level.CreateLevelInput{Name: name})
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrAlreadyExists):
			logger.InfoContext(ctx, "level exists, skipping", slog.String("name", name))
		default:
			return created, fmt.Errorf("seed level %q: %w", name, err)
		}
	}
	return created, nil
}
