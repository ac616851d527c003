package quiz

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultAdvanceDelay is how long feedback stays visible before the session
// moves on.
const DefaultAdvanceDelay = 1500 * time.Millisecond

// ErrClosed is returned by a Runner after Close.
var ErrClosed = errors.New("quiz: session closed")

// Scheduler runs f once after d on another goroutine. The returned stop
// prevents f from running if it has not started yet. f must not be called
// before Scheduler returns.
type Scheduler func(d time.Duration, f func()) (stop func() bool)

func afterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithScheduler replaces time.AfterFunc as the source of delayed advances.
func WithScheduler(s Scheduler) RunnerOption {
	return func(r *Runner) { r.schedule = s }
}

// WithAdvanceDelay sets the delay between an answer and the advance.
func WithAdvanceDelay(d time.Duration) RunnerOption {
	return func(r *Runner) { r.delay = d }
}

// Runner drives a State interactively. After each answer it schedules an
// Advance; Restart and Close drop a pending advance so it never applies to
// a newer state. Safe for concurrent use.
type Runner struct {
	mu       sync.Mutex
	state    State
	rnd      Rand
	delay    time.Duration
	schedule Scheduler

	gen     uint64
	stop    func() bool
	pending chan struct{}
	closed  bool
}

// NewRunner wraps state. rnd is only used under the runner's lock, so it may
// be a non-thread-safe source owned by this runner.
func NewRunner(state State, rnd Rand, opts ...RunnerOption) *Runner {
	r := &Runner{
		state:    state,
		rnd:      rnd,
		delay:    DefaultAdvanceDelay,
		schedule: afterFunc,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current snapshot.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Answer records the answer to the pending question and schedules the
// advance. The returned state carries the feedback.
func (r *Runner) Answer(option int) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return r.state, ErrClosed
	}

	next, err := Reduce(r.state, Answer{Option: option}, r.rnd)
	if err != nil {
		return r.state, err
	}
	r.state = next

	r.gen++
	gen := r.gen
	r.pending = make(chan struct{})
	r.stop = r.schedule(r.delay, func() { r.fire(gen) })

	return r.state, nil
}

// Restart reshuffles and starts over, dropping any pending advance.
func (r *Runner) Restart() (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return r.state, ErrClosed
	}

	r.cancelPending()
	next, err := Reduce(r.state, Restart{}, r.rnd)
	if err != nil {
		return r.state, err
	}
	r.state = next

	return r.state, nil
}

// AwaitAdvance blocks until the pending advance has been applied or dropped,
// or ctx is done. It returns immediately when nothing is pending.
func (r *Runner) AwaitAdvance(ctx context.Context) (State, error) {
	r.mu.Lock()
	pending := r.pending
	r.mu.Unlock()

	if pending != nil {
		select {
		case <-pending:
		case <-ctx.Done():
			return r.State(), ctx.Err()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return r.state, ErrClosed
	}
	return r.state, nil
}

// Snapshot returns the current state together with whether an advance is
// scheduled, read under one lock.
func (r *Runner) Snapshot() (State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, r.pending != nil
}

// Pending reports whether an advance is scheduled.
func (r *Runner) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending != nil
}

// Close drops the pending advance and rejects further events. Idempotent.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.cancelPending()
}

func (r *Runner) fire(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || gen != r.gen {
		return
	}

	next, err := Reduce(r.state, Advance{}, r.rnd)
	if err == nil {
		r.state = next
	}
	r.stop = nil
	r.settle()
}

// cancelPending must be called with mu held.
func (r *Runner) cancelPending() {
	if r.stop != nil {
		r.stop()
		r.stop = nil
	}
	r.gen++
	r.settle()
}

func (r *Runner) settle() {
	if r.pending != nil {
		close(r.pending)
		r.pending = nil
	}
}
