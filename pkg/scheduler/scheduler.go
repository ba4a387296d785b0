// Package scheduler drives periodic explore feed reconciliation
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/updater.go -pkg mocks -skip-ensure -fmt goimports . Updater

// Updater is the schema-facing contract, one reconciliation pass per call
type Updater interface {
	Update(ctx context.Context, force bool) bool
}

// Scheduler runs schema updates on a fixed interval
type Scheduler struct {
	updater        Updater
	updateInterval time.Duration
	wg             sync.WaitGroup
	cancel         context.CancelFunc
}

// Config holds scheduler configuration
type Config struct {
	UpdateInterval time.Duration
}

// NewScheduler creates a new scheduler instance
func NewScheduler(updater Updater, cfg Config) *Scheduler {
	if cfg.UpdateInterval == 0 {
		cfg.UpdateInterval = 30 * time.Minute
	}
	return &Scheduler{updater: updater, updateInterval: cfg.UpdateInterval}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.updateWorker(ctx)

	lgr.Printf("[INFO] scheduler started with update interval %v", s.updateInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// updateWorker periodically reconciles the section list
func (s *Scheduler) updateWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	// run immediately on start
	s.runUpdate(ctx, false)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runUpdate(ctx, false)
		}
	}
}

func (s *Scheduler) runUpdate(ctx context.Context, force bool) {
	changed := s.updater.Update(ctx, force)
	if changed {
		lgr.Printf("[INFO] section list changed")
	}
	lgr.Printf("[DEBUG] update pass completed, changed=%v", changed)
}

// UpdateNow triggers an immediate forced reconciliation
func (s *Scheduler) UpdateNow(ctx context.Context) {
	lgr.Printf("[INFO] triggered immediate update")
	s.runUpdate(ctx, true)
}
