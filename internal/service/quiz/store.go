package quiz

import (
	"sync"
	"time"

	"github.com/google/uuid"

	engine "github.com/heartmarshall/wortschatz-backend/internal/quiz"
)

type entry struct {
	runner   *engine.Runner
	levelID  uuid.UUID
	topicID  uuid.UUID
	lastUsed time.Time
}

// store keeps live runners keyed by session id.
type store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
}

func newStore() *store {
	return &store{sessions: make(map[uuid.UUID]*entry)}
}

// add inserts e unless the store already holds limit sessions.
func (s *store) add(id uuid.UUID, e *entry, limit int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit > 0 && len(s.sessions) >= limit {
		return false
	}
	s.sessions[id] = e
	return true
}

// touch returns the entry for id and marks it used at now.
func (s *store) touch(id uuid.UUID, now time.Time) (*entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if ok {
		e.lastUsed = now
	}
	return e, ok
}

func (s *store) remove(id uuid.UUID) (*entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	return e, ok
}

// expire removes and closes sessions idle longer than ttl.
func (s *store) expire(now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	var stale []*entry
	for id, e := range s.sessions {
		if now.Sub(e.lastUsed) > ttl {
			stale = append(stale, e)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, e := range stale {
		e.runner.Close()
	}
	return len(stale)
}

// drain removes and closes every session.
func (s *store) drain() int {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[uuid.UUID]*entry)
	s.mu.Unlock()

	for _, e := range all {
		e.runner.Close()
	}
	return len(all)
}

func (s *store) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
