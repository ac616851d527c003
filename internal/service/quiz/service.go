// Package quiz manages live quiz sessions over the words of a topic.
package quiz

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/config"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	engine "github.com/heartmarshall/wortschatz-backend/internal/quiz"
)

type wordLister interface {
	ListByTopic(ctx context.Context, levelID, topicID uuid.UUID) ([]domain.Word, error)
}

// Session is a snapshot of one live quiz session.
type Session struct {
	ID      uuid.UUID
	LevelID uuid.UUID
	TopicID uuid.UUID
	State   engine.State
	// Pending is true while the advance after an answer has not fired yet.
	Pending bool
}

// Service starts quiz sessions and routes learner events to them.
type Service struct {
	words wordLister
	cfg   config.QuizConfig
	log   *slog.Logger
	store *store

	now        func() time.Time
	runnerOpts []engine.RunnerOption

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewService creates a new Quiz service and starts the idle-session sweeper.
// Call Close on shutdown.
func NewService(log *slog.Logger, words wordLister, cfg config.QuizConfig) *Service {
	s := &Service{
		words:      words,
		cfg:        cfg,
		log:        log.With("service", "quiz"),
		store:      newStore(),
		now:        time.Now,
		runnerOpts: []engine.RunnerOption{engine.WithAdvanceDelay(cfg.AdvanceDelay)},
		stop:       make(chan struct{}),
	}

	if cfg.SweepInterval > 0 && cfg.SessionTTL > 0 {
		s.wg.Add(1)
		go s.sweep(cfg.SweepInterval)
	}

	return s
}

// Close stops the sweeper and closes every live session.
func (s *Service) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()
		if n := s.store.drain(); n > 0 {
			s.log.Info("quiz sessions closed", slog.Int("count", n))
		}
	})
}

// Active returns the number of live sessions.
func (s *Service) Active() int {
	return s.store.count()
}

func (s *Service) sweep(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if n := s.store.expire(s.now(), s.cfg.SessionTTL); n > 0 {
				s.log.Info("idle quiz sessions expired", slog.Int("count", n))
			}
		}
	}
}

// newRand returns a source owned by a single runner.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func snapshot(id uuid.UUID, e *entry) *Session {
	state, pending := e.runner.Snapshot()
	return &Session{
		ID:      id,
		LevelID: e.levelID,
		TopicID: e.topicID,
		State:   state,
		Pending: pending,
	}
}
