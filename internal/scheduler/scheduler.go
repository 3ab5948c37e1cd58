package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"BreakoutSentinel/internal/alert"
	"BreakoutSentinel/internal/recorder"
	"BreakoutSentinel/internal/screener"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the screening pass on a fixed interval and keeps the latest
// snapshot for the dashboard.
type Scheduler struct {
	Cron       *cron.Cron
	Runner     *screener.Runner
	Dispatcher *alert.Dispatcher
	Recorder   recorder.Recorder
	Ctx        context.Context

	mu     sync.RWMutex
	latest *screener.Snapshot
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, runner *screener.Runner, dispatcher *alert.Dispatcher, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Runner:     runner,
		Dispatcher: dispatcher,
		Recorder:   rec,
		Ctx:        ctx,
	}
}

// Register registers the periodic refresh pass.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.runPass); err != nil {
		return fmt.Errorf("register refresh pass: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes a pass immediately (startup and manual refresh).
func (s *Scheduler) RunNow() {
	s.runPass()
}

// Latest returns the most recent snapshot, or nil before the first pass.
func (s *Scheduler) Latest() *screener.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Scheduler) runPass() {
	log.Println("[INFO] running screening pass")
	snap := s.Runner.Run(s.Ctx)

	s.mu.Lock()
	s.latest = snap
	s.mu.Unlock()

	doubles := snap.DoubleBreakouts()
	if len(snap.Results) == 0 {
		log.Println("[INFO] no valid breakout data found")
	} else {
		log.Printf("[INFO] pass complete: %d breakouts (%d double) from %d symbols",
			len(snap.Results), len(doubles), snap.Scanned)
	}

	s.Dispatcher.Dispatch(doubles)

	if err := s.Recorder.RecordPass(&recorder.PassEvent{
		Scanned:     snap.Scanned,
		Results:     len(snap.Results),
		Doubles:     len(doubles),
		FetchErrors: len(snap.FetchErrors),
	}); err != nil {
		log.Printf("[ERROR] record pass: %v", err)
	}
}
