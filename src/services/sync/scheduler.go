package sync

import (
	"context"
	"log"
	"sync/atomic"
	"time"
)

// Scheduler fires one sync cycle per interval. Cycles never overlap: a tick
// that arrives while a cycle is still running is skipped, not queued.
type Scheduler struct {
	interval time.Duration
	run      func(ctx context.Context)
	busy     atomic.Bool
}

func NewScheduler(interval time.Duration, run func(ctx context.Context)) *Scheduler {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Scheduler{interval: interval, run: run}
}

// Start blocks until ctx is cancelled, running one cycle per tick.
func (s *Scheduler) Start(ctx context.Context) {
	log.Printf("✅ [scheduler] response sync every %s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ [scheduler] stopped:", ctx.Err())
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick starts one cycle unless the previous one is still in flight, in which
// case the tick is skipped outright. Failures inside a cycle never change the
// cadence; the next tick retries every form at the same interval.
func (s *Scheduler) Tick(ctx context.Context) bool {
	if !s.busy.CompareAndSwap(false, true) {
		log.Println("⚠️ [scheduler] previous cycle still running, skipping tick")
		return false
	}

	go func() {
		defer s.busy.Store(false)
		s.run(ctx)
	}()
	return true
}
