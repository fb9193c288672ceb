// Package scheduler triggers the periodic refresh of due autopilots.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"campaign-autopilot/internal/core/port"
)

// Refresher is the part of the production orchestrator the scheduler runs.
type Refresher interface {
	RefreshDue(ctx context.Context, now time.Time) (port.ProductionReport, error)
}

// Scheduler runs RefreshDue on a cron spec. A run that is still in progress
// when the next one is due causes that next run to be skipped.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	logger    *slog.Logger
	now       func() time.Time
	timeout   time.Duration
}

// New parses spec as a standard five-field cron expression evaluated in loc.
// timeout bounds a single refresh pass; zero means no bound.
func New(spec string, loc *time.Location, timeout time.Duration, refresher Refresher, logger *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		refresher: refresher,
		logger:    logger,
		now:       time.Now,
		timeout:   timeout,
	}
	s.cron = cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger})),
	)
	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("scheduler spec %q: %w", spec, err)
	}
	return s, nil
}

// Start begins scheduling in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for a running pass until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out, refresh still running")
	}
}

// RunOnce performs one refresh pass.
func (s *Scheduler) RunOnce(ctx context.Context) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	started := s.now()
	report, err := s.refresher.RefreshDue(ctx, started)
	if err != nil {
		s.logger.Error("refresh failed", slog.Any("error", err))
		return
	}
	s.logger.Info("refresh pass done",
		slog.Int("dispatched", report.Dispatched),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Duration("took", s.now().Sub(started)),
	)
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	l *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debug("cron: "+msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
