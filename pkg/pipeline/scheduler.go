// pkg/pipeline/scheduler.go

package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs poll cycles on a fixed interval. Cycles never overlap: if
// the previous one is still running when the next tick fires, the tick is
// skipped.
type Scheduler struct {
	processor *Processor
	logger    *log.Logger
	interval  time.Duration

	running sync.Mutex
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
}

// NewScheduler creates a new cycle scheduler
func NewScheduler(processor *Processor, logger *log.Logger, interval time.Duration) *Scheduler {
	return &Scheduler{
		processor: processor,
		logger:    logger,
		interval:  interval,
	}
}

// Start runs the first cycle immediately, then begins the periodic loop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.runCtx, s.cancel = context.WithCancel(ctx)

	c := cron.New()
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return fmt.Errorf("error scheduling poll cycle: %w", err)
	}

	go s.runOnce()
	c.Start()
	s.cron = c
	return nil
}

// Stop cancels the running cycle and waits for in-flight cron jobs.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		stopCtx := s.cron.Stop()
		<-stopCtx.Done()
	}
	// Wait for a manually triggered first run still in flight.
	s.running.Lock()
	s.running.Unlock()
}

func (s *Scheduler) runOnce() {
	if !withinActiveHours(s.processor.config.Processing.ActiveHours, time.Now()) {
		s.logger.Println("Skipping cycle: outside active hours")
		return
	}

	if !s.running.TryLock() {
		s.logger.Println("Skipping cycle: previous cycle still running")
		return
	}
	defer s.running.Unlock()

	if s.runCtx.Err() != nil {
		return
	}

	if err := s.processor.RunCycle(s.runCtx); err != nil {
		s.logger.Printf("Cycle error: %v", err)
	}
}
