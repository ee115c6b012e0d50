// Package refresh keeps the reference datasets current in long-lived
// sessions. The datasets are edited upstream (new brands, tier changes);
// a scheduled invalidate-and-reload picks those up without a restart.
package refresh

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/reselltools/pricewise/internal/refdata"
)

// DefaultSchedule reloads daily at 04:15, off the usual traffic peaks.
const DefaultSchedule = "15 4 * * *"

// Service schedules periodic reference-data reloads.
type Service struct {
	loader   *refdata.Loader
	cron     *cron.Cron
	schedule string
	timeout  time.Duration
	log      zerolog.Logger
}

type Options struct {
	// Schedule is a cron expression; empty means DefaultSchedule.
	Schedule string
	// Timeout bounds one refresh cycle.
	Timeout time.Duration
	Logger  zerolog.Logger
}

func NewService(loader *refdata.Loader, opts Options) *Service {
	if opts.Schedule == "" {
		opts.Schedule = DefaultSchedule
	}
	if opts.Timeout == 0 {
		opts.Timeout = 2 * time.Minute
	}
	return &Service{
		loader:   loader,
		cron:     cron.New(),
		schedule: opts.Schedule,
		timeout:  opts.Timeout,
		log:      opts.Logger,
	}
}

// Start registers the schedule and begins running. Returns the entry ID so
// callers can inspect the schedule.
func (s *Service) Start() (cron.EntryID, error) {
	id, err := s.cron.AddFunc(s.schedule, s.refreshOnce)
	if err != nil {
		return 0, err
	}
	s.cron.Start()
	s.log.Info().Str("schedule", s.schedule).Msg("reference refresh scheduled")
	return id, nil
}

// Stop halts the scheduler, waiting for a running refresh to finish.
func (s *Service) Stop() {
	<-s.cron.Stop().Done()
}

// RefreshNow forces an immediate reload outside the schedule.
func (s *Service) RefreshNow(ctx context.Context) {
	s.refresh(ctx)
}

func (s *Service) refreshOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.refresh(ctx)
}

func (s *Service) refresh(ctx context.Context) {
	start := time.Now()
	s.loader.Invalidate()
	s.loader.Load(ctx)
	s.log.Info().Dur("took", time.Since(start)).Msg("reference datasets reloaded")
}
