// Package scheduler runs periodic group syncs on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gatherhub/gatherhub/pkg/sync"
)

// syncTimeout bounds one scheduled pass. Generous; a full pass over
// every group with rate-limited providers can be slow.
const syncTimeout = 30 * time.Minute

// Scheduler triggers SyncAllGroups on a cron expression.
type Scheduler struct {
	cron    *cron.Cron
	syncSvc *sync.Service
	logger  *slog.Logger
}

// New creates a scheduler for the given cron spec (standard 5-field
// format). Returns an error for an unparsable spec.
func New(spec string, syncSvc *sync.Service) (*Scheduler, error) {
	logger := slog.With("component", "scheduler")
	s := &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.DiscardLogger),
		)),
		syncSvc: syncSvc,
		logger:  logger,
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins firing on schedule. Non-blocking.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("sync scheduler started")
}

// Stop waits for a running pass to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("sync scheduler stopped")
}

// run executes one scheduled pass. SkipIfStillRunning drops ticks that
// arrive while a pass is in flight.
func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	result, err := s.syncSvc.SyncAllGroups(ctx, sync.SyncAllOptions{})
	if err != nil {
		s.logger.Error("scheduled sync failed", "error", err)
		return
	}
	s.logger.Info("scheduled sync finished",
		"groups", result.Total,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"duration_ms", result.DurationMs)
}
