// Command import loads a word list into a level and topic.
//
// The file format is chosen by extension: .csv and .xlsx take German in the
// first column and Chinese in the second, .txt alternates German and Chinese
// lines. Words already present in the topic are skipped.
//
// Flags:
//
//	--file          path to the word list (required)
//	--level         level name, e.g. A1 (required)
//	--topic         topic name (required)
//	--create-topic  create the topic if it does not exist
//	--dry-run       print the parsed pairs as CSV instead of importing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wortschatz-backend/internal/app"
	"github.com/heartmarshall/wortschatz-backend/internal/config"
	"github.com/heartmarshall/wortschatz-backend/internal/service/word"
	"github.com/heartmarshall/wortschatz-backend/internal/wordfile"
)

func main() {
	fileFlag := flag.String("file", "", "path to a .csv, .xlsx or .txt word list")
	levelFlag := flag.String("level", "", "level name")
	topicFlag := flag.String("topic", "", "topic name")
	createTopicFlag := flag.Bool("create-topic", false, "create the topic if missing")
	dryRunFlag := flag.Bool("dry-run", false, "print parsed pairs as CSV and exit")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("import: --file is required")
	}

	pairs, err := readPairs(*fileFlag)
	if err != nil {
		log.Fatalf("import: %v", err)
	}

	if *dryRunFlag {
		if err := writeCSV(pairs); err != nil {
			log.Fatalf("import: %v", err)
		}
		return
	}

	if *levelFlag == "" || *topicFlag == "" {
		log.Fatal("import: --level and --topic are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs := app.NewServices(cfg, pool, logger)
	defer svcs.Quiz.Close()

	scope, err := app.ResolveScope(ctx, svcs.Level, svcs.Topic, *levelFlag, *topicFlag, *createTopicFlag)
	if err != nil {
		logger.Error("resolve level and topic", slog.String("error", err.Error()))
		os.Exit(1)
	}

	res, err := svcs.Word.ImportWords(ctx, word.ImportWordsInput{
		Words: wordfile.ToInputs(pairs, scope.Level.ID, scope.Topic.ID),
	})
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import completed",
		slog.String("file", *fileFlag),
		slog.String("level", scope.Level.Name),
		slog.String("topic", scope.Topic.Name),
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
	)
}

func readPairs(path string) ([]wordfile.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pairs, err := wordfile.Parse(path, f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return pairs, nil
}

func writeCSV(pairs []wordfile.Pair) error {
	w := csv.NewWriter(os.Stdout)
	for _, p := range pairs {
		if err := w.Write([]string{p.German, p.Chinese}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
