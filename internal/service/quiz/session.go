package quiz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	engine "github.com/heartmarshall/wortschatz-backend/internal/quiz"
)

// StartSession loads the words of a (level, topic) pair and starts a session
// over them. Fewer than the configured minimum is a validation error.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	words, err := s.words.ListByTopic(ctx, input.LevelID, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	minWords := max(s.cfg.MinWords, engine.MinWords)
	if len(words) < minWords {
		return nil, domain.NewValidationError("words", fmt.Sprintf("at least %d words required, topic has %d", minWords, len(words)))
	}

	rnd := newRand()
	state, err := engine.New(words, rnd)
	if err != nil {
		return nil, fmt.Errorf("new quiz: %w", err)
	}

	id := uuid.New()
	e := &entry{
		runner:   engine.NewRunner(state, rnd, s.runnerOpts...),
		levelID:  input.LevelID,
		topicID:  input.TopicID,
		lastUsed: s.now(),
	}
	if !s.store.add(id, e, s.cfg.MaxSessions) {
		e.runner.Close()
		return nil, fmt.Errorf("%w: %d quiz sessions active", domain.ErrTransient, s.cfg.MaxSessions)
	}

	s.log.InfoContext(ctx, "quiz session started",
		slog.String("session_id", id.String()),
		slog.String("level_id", input.LevelID.String()),
		slog.String("topic_id", input.TopicID.String()),
		slog.Int("words", len(words)),
	)

	return snapshot(id, e), nil
}

// GetSession returns the current snapshot of a session.
func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return snapshot(id, e), nil
}

// Answer records an answer. The advance to the next question happens after
// the configured delay.
func (s *Service) Answer(ctx context.Context, input AnswerInput) (*Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	e, err := s.lookup(input.SessionID)
	if err != nil {
		return nil, err
	}

	if _, err := e.runner.Answer(input.Option); err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}

	return snapshot(input.SessionID, e), nil
}

// Restart reshuffles a session and starts its first pass again.
func (s *Service) Restart(ctx context.Context, id uuid.UUID) (*Session, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	if _, err := e.runner.Restart(); err != nil {
		return nil, fmt.Errorf("restart: %w", err)
	}

	s.log.InfoContext(ctx, "quiz session restarted",
		slog.String("session_id", id.String()),
	)

	return snapshot(id, e), nil
}

// EndSession closes a session and drops its pending advance.
func (s *Service) EndSession(ctx context.Context, id uuid.UUID) error {
	e, ok := s.store.remove(id)
	if !ok {
		return fmt.Errorf("quiz session %s: %w", id, domain.ErrNotFound)
	}
	e.runner.Close()

	st := e.runner.State()
	s.log.InfoContext(ctx, "quiz session ended",
		slog.String("session_id", id.String()),
		slog.Int("answered", st.Answered()),
		slog.Int("correct", st.Correct()),
		slog.Bool("completed", st.Completed()),
	)

	return nil
}

func (s *Service) lookup(id uuid.UUID) (*entry, error) {
	e, ok := s.store.touch(id, s.now())
	if !ok {
		return nil, fmt.Errorf("quiz session %s: %w", id, domain.ErrNotFound)
	}
	return e, nil
}
