package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Expirer drops state that has been idle too long and reports how much.
// Both DraftService and CancellationService satisfy it.
type Expirer interface {
	ExpireIdle(ctx context.Context, now time.Time) int
}

// Sweeper periodically expires idle drafts and confirmations.
type Sweeper struct {
	cron    *cron.Cron
	targets map[string]Expirer
	log     *slog.Logger
}

// NewSweeper schedules a sweep of targets on the given cron spec
// (e.g. "@every 1m"). Keys of targets are only used in log lines.
func NewSweeper(schedule string, targets map[string]Expirer, log *slog.Logger) (*Sweeper, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Sweeper{
		cron:    cron.New(),
		targets: targets,
		log:     log,
	}
	if _, err := s.cron.AddFunc(schedule, func() { s.Sweep(context.Background()) }); err != nil {
		return nil, fmt.Errorf("service.NewSweeper: schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start runs the schedule in its own goroutine.
func (s *Sweeper) Start() {
	s.log.Info("expiry sweeper started", "entries", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop halts the schedule and returns a context that is done once any
// running sweep has finished.
func (s *Sweeper) Stop() context.Context {
	return s.cron.Stop()
}

// Sweep runs one expiry pass over every target and returns the total removed.
func (s *Sweeper) Sweep(ctx context.Context) int {
	now := time.Now()
	total := 0
	for name, t := range s.targets {
		n := t.ExpireIdle(ctx, now)
		if n > 0 {
			s.log.DebugContext(ctx, "expired idle state", "kind", name, "count", n)
		}
		total += n
	}
	return total
}
