// Command quiz runs a vocabulary drill in the terminal: every word of a topic
// is asked Chinese→German, then German→Chinese, with three options each.
//
// Flags:
//
//	--level  level name, e.g. A1 (required)
//	--topic  topic name (required)
//
// Exit codes: 0 = quit or end of input, 1 = error.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wortschatz-backend/internal/app"
	"github.com/heartmarshall/wortschatz-backend/internal/config"
	engine "github.com/heartmarshall/wortschatz-backend/internal/quiz"
	"github.com/heartmarshall/wortschatz-backend/internal/service/word"
)

func main() {
	levelFlag := flag.String("level", "", "level name")
	topicFlag := flag.String("topic", "", "topic name")
	flag.Parse()

	if *levelFlag == "" || *topicFlag == "" {
		log.Fatal("quiz: --level and --topic are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs := app.NewServices(cfg, pool, logger)
	defer svcs.Quiz.Close()

	scope, err := app.ResolveScope(ctx, svcs.Level, svcs.Topic, *levelFlag, *topicFlag, false)
	if err != nil {
		logger.Error("resolve level and topic", slog.String("error", err.Error()))
		os.Exit(1)
	}

	words, err := svcs.Word.ListWords(ctx, word.ListWordsInput{LevelID: scope.Level.ID, TopicID: scope.Topic.ID})
	if err != nil {
		logger.Error("list words", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rnd := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	state, err := engine.New(words, rnd)
	if err != nil {
		logger.Error("start quiz", slog.String("error", err.Error()))
		os.Exit(1)
	}

	runner := engine.NewRunner(state, rnd, engine.WithAdvanceDelay(cfg.Quiz.AdvanceDelay))
	defer runner.Close()

	err = drill(ctx, runner, readLines(ctx, bufio.NewScanner(os.Stdin)), os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("quiz", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
