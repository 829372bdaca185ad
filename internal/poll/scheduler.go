package poll

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RefreshFunc is one full-replacement fetch. Concurrent invocations converge
// because the last response to land wins.
type RefreshFunc func(ctx context.Context) error

// Group runs several refreshes concurrently and reports the first error, the
// way a dashboard reloads tables, menu and zones in one cycle.
func Group(fns ...RefreshFunc) RefreshFunc {
	return func(ctx context.Context) error {
		var wg sync.WaitGroup
		errc := make(chan error, len(fns))
		for _, fn := range fns {
			wg.Add(1)
			go func(fn RefreshFunc) {
				defer wg.Done()
				if err := fn(ctx); err != nil {
					errc <- err
				}
			}(fn)
		}
		wg.Wait()
		close(errc)
		return <-errc
	}
}

// Scheduler drives a fixed-interval refresh for one screen. It is an explicit
// start/stop lifecycle object: acquired on mount, unconditionally released on
// unmount so no state is updated for a torn-down view. Stop cancels future
// polls but does not abort an in-flight refresh.
type Scheduler struct {
	name     string
	interval time.Duration
	refresh  RefreshFunc
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewScheduler(name string, interval time.Duration, refresh RefreshFunc, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		name:     name,
		interval: interval,
		refresh:  refresh,
		logger:   logger,
	}
}

// Start runs one immediate refresh and then polls on the interval until Stop
// or ctx cancellation. Starting a running scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	done := make(chan struct{})
	s.done = done

	go s.run(ctx, done)
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick swallows refresh errors: stale state is kept silently because another
// poll follows shortly.
func (s *Scheduler) tick(ctx context.Context) {
	if err := s.refresh(ctx); err != nil {
		s.logger.Debug("poll refresh failed", "poller", s.name, "error", err)
	}
}

// Stop tears the loop down and waits for the goroutine to exit. Idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.cancel = nil
	s.done = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
