package practice

import (
	"context"
	"sync"
	"time"

	"github.com/alexander-akhmetov/signdeck/internal/debug"
)

// Scheduler drives an Engine from a time.Ticker for hosts without their own
// event loop. At most one tick stream runs at a time.
type Scheduler struct {
	engine   *Engine
	interval time.Duration
	onTick   func(TickResult)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithInterval overrides the one-second tick interval.
func WithInterval(d time.Duration) SchedulerOption {
	return func(s *Scheduler) { s.interval = d }
}

// NewScheduler returns a stopped scheduler for e. onTick, if set, is called
// from the scheduler goroutine after every non-stale tick. It must not call
// Run or Stop; cancel the context passed to Run instead.
func NewScheduler(e *Engine, onTick func(TickResult), opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{engine: e, interval: time.Second, onTick: onTick}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run stops the previous stream, waits for it to exit, and starts a new one
// bound to the engine's current generation. The stream ends when ctx is
// done, Stop is called, or a tick comes back stale or ended.
func (s *Scheduler) Run(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	gen := s.engine.Generation()
	debug.Logf("scheduler: starting stream gen=%d interval=%s", gen, s.interval)
	go s.loop(ctx, gen, done)
}

// Stop ends the running stream and waits for it. Safe to call when stopped.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Done returns a channel closed when the current stream exits. It is nil if
// Run was never called.
func (s *Scheduler) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

func (s *Scheduler) stopLocked() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
}

func (s *Scheduler) loop(ctx context.Context, gen uint64, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res := s.engine.Tick(gen)
			if s.onTick != nil && res.Kind != TickStale {
				s.onTick(res)
			}
			if !res.Live() {
				debug.Logf("scheduler: stream gen=%d ended (%s)", gen, res.Kind)
				return
			}
		}
	}
}
