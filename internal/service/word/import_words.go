package word

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// ImportResult contains the outcome of a bulk import.
type ImportResult struct {
	Inserted int
	Skipped  int
}

type scope struct {
	levelID uuid.UUID
	topicID uuid.UUID
}

// ImportWords inserts every tuple whose (german, level, topic) is not stored
// yet. The whole batch runs in one transaction: any failure leaves the
// database untouched. Repeats inside the batch are skipped too.
func (s *Service) ImportWords(ctx context.Context, input ImportWordsInput) (*ImportResult, error) {
	if err := input.Validate(s.cfg.MaxBatch); err != nil {
		return nil, err
	}

	words := make([]domain.WordInput, len(input.Words))
	for i, w := range input.Words {
		words[i] = domain.WordInput{
			German:  domain.CleanText(w.German),
			Chinese: domain.CleanText(w.Chinese),
			LevelID: w.LevelID,
			TopicID: w.TopicID,
		}
	}

	if err := s.checkScopes(ctx, words); err != nil {
		return nil, err
	}

	topics := lockOrder(words)

	inserted := 0
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		inserted = 0
		for _, id := range topics {
			if err := s.words.LockTopic(txCtx, id); err != nil {
				return fmt.Errorf("lock topic: %w", err)
			}
		}
		for _, w := range words {
			exists, err := s.words.ExistsInTopic(txCtx, w.German, w.LevelID, w.TopicID)
			if err != nil {
				return fmt.Errorf("check word: %w", err)
			}
			if exists {
				continue
			}
			if _, err := s.words.Create(txCtx, w); err != nil {
				return fmt.Errorf("create word: %w", err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import words: %w", err)
	}

	result := &ImportResult{Inserted: inserted, Skipped: len(words) - inserted}

	s.log.InfoContext(ctx, "words imported",
		slog.Int("total", len(words)),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

// lockOrder returns the distinct topics of the batch in a fixed order so that
// two imports touching the same topics never wait on each other in a cycle.
func lockOrder(words []domain.WordInput) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, w := range words {
		if !seen[w.TopicID] {
			seen[w.TopicID] = true
			ids = append(ids, w.TopicID)
		}
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	return ids
}

// checkScopes resolves each distinct (level, topic) pair of the batch. A
// topic that belongs to another level counts as not found.
func (s *Service) checkScopes(ctx context.Context, words []domain.WordInput) error {
	seen := make(map[scope]bool)
	for _, w := range words {
		sc := scope{levelID: w.LevelID, topicID: w.TopicID}
		if seen[sc] {
			continue
		}
		seen[sc] = true

		if _, err := s.levels.GetByID(ctx, sc.levelID); err != nil {
			return fmt.Errorf("get level: %w", err)
		}
		topic, err := s.topics.GetByID(ctx, sc.topicID)
		if err != nil {
			return fmt.Errorf("get topic: %w", err)
		}
		if topic.LevelID != sc.levelID {
			return fmt.Errorf("topic %s in level %s: %w", sc.topicID, sc.levelID, domain.ErrNotFound)
		}
	}
	return nil
}
