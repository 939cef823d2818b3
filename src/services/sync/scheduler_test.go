package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerSkipsTickWhileBusy(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)

	// Later cycles pass straight through once release is closed.
	s := NewScheduler(time.Minute, func(ctx context.Context) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
	})

	require.True(t, s.Tick(context.Background()), "first tick must start a cycle")
	<-started

	assert.False(t, s.Tick(context.Background()), "tick during a running cycle must be skipped")
	assert.False(t, s.Tick(context.Background()), "still busy, still skipped")

	close(release)

	// cycle finished → the guard clears and the next tick runs
	assert.Eventually(t, func() bool {
		return s.Tick(context.Background())
	}, time.Second, 5*time.Millisecond)
}

func TestSchedulerRunsCyclesAtCadence(t *testing.T) {
	ran := make(chan struct{}, 4)
	s := NewScheduler(10*time.Millisecond, func(ctx context.Context) {
		ran <- struct{}{}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	// at least two full cycles fire
	for i := 0; i < 2; i++ {
		select {
		case <-ran:
		case <-time.After(time.Second):
			t.Fatal("scheduler never ran a cycle")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on cancellation")
	}
}
