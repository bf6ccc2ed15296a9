package app

import (
	"context"
	"sync"
	"time"
)

const defaultTickInterval = time.Second

// Scheduler calls a function at a fixed cadence on a background goroutine.
// It is the tick source for the workout timer.
type Scheduler struct {
	ctx      context.Context
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler returns a stopped scheduler. Runs end when ctx is cancelled.
func NewScheduler(ctx context.Context, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	return &Scheduler{ctx: ctx, interval: interval}
}

// Start runs fn once per interval until Stop. A run already in progress is
// stopped first. fn must not call back into the Scheduler.
func (s *Scheduler) Start(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			// Stop may have raced the ticker; never fire for a cancelled run.
			if ctx.Err() != nil {
				return
			}
			fn()
		}
	}()
}

// Stop cancels the current run and waits for its goroutine to exit, so fn is
// not called again once Stop returns. Stopping an idle scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
}
