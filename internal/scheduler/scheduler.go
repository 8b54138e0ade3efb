// Package scheduler wires up the cron job that periodically refreshes the
// stored job collection from the upstream source.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"jobdesk/internal/services"
)

// Scheduler wraps robfig/cron and manages the refresh loop.
type Scheduler struct {
	cron *cron.Cron
	jobs *services.JobService
	spec string // cron spec, e.g. "@every 6h"
	log  zerolog.Logger
}

// New creates a Scheduler that fires every intervalHours hours.
func New(jobs *services.JobService, intervalHours int, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		jobs: jobs,
		spec: fmt.Sprintf("@every %dh", intervalHours),
		log:  log,
	}
}

// Start registers the job and starts the scheduler. Also runs one refresh
// immediately so the collection is populated without waiting for the first
// tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.log.Info().Str("spec", s.spec).Msg("refresh scheduler started")

	go s.refresh(ctx)
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info().Msg("refresh scheduler stopped")
}

func (s *Scheduler) refresh(ctx context.Context) {
	jobs, err := s.jobs.FetchAndStore(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("scheduled refresh failed")
		return
	}
	s.log.Info().Int("jobs", len(jobs)).Msg("scheduled refresh complete")
}
