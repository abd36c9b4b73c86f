// Package scheduler runs the capture, brief and magazine jobs on cron specs in one process.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"litmus/internal/config"
)

// Jobs are the units the scheduler triggers. Each returns the job's error for logging.
type Jobs struct {
	Capture func(ctx context.Context) error
	Brief   func(ctx context.Context, region, briefType string) error
	Weekend func(ctx context.Context) error
}

// Scheduler skips a trigger while the previous run of the same job is still going, so each
// output file keeps a single writer.
type Scheduler struct {
	ctx  context.Context
	cron *cron.Cron
}

// New registers every configured job. Specs are standard five-field cron expressions in UTC.
func New(ctx context.Context, cfg *config.Config, jobs Jobs) (*Scheduler, error) {
	s := &Scheduler{
		ctx: ctx,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
	}

	if err := s.add(cfg.CaptureSchedule, "capture", jobs.Capture); err != nil {
		return nil, err
	}

	for _, b := range cfg.BriefSchedules {
		region, briefType := b.Region, b.BriefType
		name := "brief " + region + "/" + briefType
		err := s.add(b.Spec, name, func(ctx context.Context) error {
			return jobs.Brief(ctx, region, briefType)
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.add(cfg.WeekendSchedule, "weekend", jobs.Weekend); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) add(spec, name string, run func(ctx context.Context) error) error {
	if spec == "" {
		slog.Info("job disabled, no schedule", "job", name)
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		start := time.Now()
		slog.Info("job started", "job", name)

		if err := run(s.ctx); err != nil {
			slog.Error("job failed", "job", name, "duration", time.Since(start).String(), "error", err)
			return
		}
		slog.Info("job finished", "job", name, "duration", time.Since(start).String())
	})
	if err != nil {
		return fmt.Errorf("schedule %s %q: %w", name, spec, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	for _, e := range s.cron.Entries() {
		slog.Info("job scheduled", "next_run", e.Next.Format(time.RFC3339))
	}
}

// Stop stops triggering jobs and waits for running ones to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) entries() []cron.Entry {
	return s.cron.Entries()
}
