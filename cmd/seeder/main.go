// Command seeder creates the default CEFR levels (A1, A2, B1, B2, C1).
// Levels that already exist are left untouched, so it is safe to re-run.
//
// Flags:
//
//	--migrate  apply pending database migrations first
//	--levels   comma-separated level names (default: A1,A2,B1,B2,C1)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	levelrepo "github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres/level"
	"github.com/heartmarshall/wortschatz-backend/internal/app"
	"github.com/heartmarshall/wortschatz-backend/internal/config"
	"github.com/heartmarshall/wortschatz-backend/internal/service/level"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "apply pending migrations first")
	levelsFlag := flag.String("levels", strings.Join(app.DefaultLevels, ","), "comma-separated level names")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if *migrateFlag {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	var names []string
	for _, n := range strings.Split(*levelsFlag, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}

	svc := level.NewService(logger, levelrepo.New(pool))

	created, err := app.SeedLevels(ctx, svc, names, logger)
	if err != nil {
		logger.Error("seed levels failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed levels completed",
		slog.Int("created", created),
		slog.Int("requested", len(names)),
	)
}
