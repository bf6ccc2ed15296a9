package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestScheduler_FiresUntilStopped(t *testing.T) {
	s := NewScheduler(context.Background(), 5*time.Millisecond)

	var calls atomic.Int64
	s.Start(func() { calls.Add(1) })

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	s.Stop()
	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no calls after Stop returns")
}

func TestScheduler_StartReplacesPreviousRun(t *testing.T) {
	s := NewScheduler(context.Background(), 5*time.Millisecond)

	var first, second atomic.Int64
	s.Start(func() { first.Add(1) })
	s.Start(func() { second.Add(1) })

	frozen := first.Load()
	require.Eventually(t, func() bool { return second.Load() >= 2 }, time.Second, time.Millisecond)
	assert.Equal(t, frozen, first.Load())

	s.Stop()
}

func TestScheduler_StopIdleIsNoop(t *testing.T) {
	s := NewScheduler(context.Background(), 0)
	assert.Equal(t, defaultTickInterval, s.interval)
	s.Stop()
	s.Stop()
}

func TestScheduler_ParentContextEndsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewScheduler(ctx, 5*time.Millisecond)

	var calls atomic.Int64
	s.Start(func() { calls.Add(1) })
	cancel()

	// Stop still returns once the goroutine has observed cancellation.
	s.Stop()
	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}
