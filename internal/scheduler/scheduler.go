package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"billsync/internal/domain"
)

// Syncer runs one sync pass over a congress session.
type Syncer interface {
	SyncRecentBills(ctx context.Context, congress, daysBack int) *domain.SyncOutcome
}

var ErrInvalidConfig = errors.New("invalid scheduler config")

type Config struct {
	Congress   int
	DaysBack   int
	Interval   time.Duration
	RunTimeout time.Duration
}

// Validate requires a positive interval and run timeout.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidConfig, c.Interval)
	}
	if c.RunTimeout <= 0 {
		return fmt.Errorf("%w: run timeout must be positive, got %s", ErrInvalidConfig, c.RunTimeout)
	}
	return nil
}

type Scheduler struct {
	syncer Syncer
	cfg    Config
	logger *slog.Logger
}

func NewScheduler(syncer Syncer, cfg Config, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer: syncer,
		cfg:    cfg,
		logger: logger.With("component", "scheduler"),
	}
}

// Start runs a sync immediately and then on every tick until ctx is done.
// Runs never overlap.
func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	s.logger.Info("scheduler started",
		"interval", s.cfg.Interval,
		"congress", s.cfg.Congress,
	)

	s.runSync(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.cfg.RunTimeout)
	defer cancel()

	outcome := s.syncer.SyncRecentBills(syncCtx, s.cfg.Congress, s.cfg.DaysBack)
	if len(outcome.Errors) > 0 {
		s.logger.Warn("sync finished with errors",
			"errors", len(outcome.Errors),
			"first_error", outcome.Errors[0],
		)
	}
}
