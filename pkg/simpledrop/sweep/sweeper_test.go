package sweep

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingService struct {
	calls   atomic.Int32
	lastAge atomic.Int64
}

func (s *countingService) SweepExpired(ctx context.Context, maxAge time.Duration) (int, error) {
	s.calls.Add(1)
	s.lastAge.Store(int64(maxAge))
	return 0, nil
}

func waitForCalls(t *testing.T, svc *countingService, want int32) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if svc.calls.Load() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected at least %d sweep calls, got %d", want, svc.calls.Load())
}

func TestSweeper_RunsImmediatelyThenOnTicks(t *testing.T) {
	svc := &countingService{}
	maxAge := 30 * 24 * time.Hour
	sweeper := New(svc, 20*time.Millisecond, maxAge)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	// One pass fires before the first tick, then ticks accumulate.
	waitForCalls(t, svc, 1)
	waitForCalls(t, svc, 3)
	assert.Equal(t, int64(maxAge), svc.lastAge.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}

func TestSweeper_StopsAfterCancellation(t *testing.T) {
	svc := &countingService{}
	sweeper := New(svc, 10*time.Millisecond, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	waitForCalls(t, svc, 2)
	cancel()
	<-done

	after := svc.calls.Load()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, after, svc.calls.Load(), "sweep fired after shutdown")
}
