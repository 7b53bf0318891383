package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingSweeper interface {
	CompleteFinished(ctx context.Context) ([]*domain.Booking, error)
	CancelStalePending(ctx context.Context) ([]*domain.Booking, error)
}

type sweep struct {
	name string
	run  func(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically advances bookings whose dates have passed:
// confirmed stays that ended become COMPLETED, pending ones whose check-in
// slipped by become CANCELLED. A failing sweep does not stop the others.
type Scheduler struct {
	sweeps   []sweep
	interval time.Duration
	logger   logger.Logger
}

func New(
	bookings bookingSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeps: []sweep{
			{name: "complete_finished", run: bookings.CompleteFinished},
			{name: "cancel_stale_pending", run: bookings.CancelStalePending},
		},
		interval: interval,
		logger:   logger,
	}
}

// Start sweeps once immediately and then on every interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	for _, sw := range s.sweeps {
		if ctx.Err() != nil {
			return
		}

		started := time.Now()
		changed, err := sw.run(ctx)
		if err != nil {
			s.logger.Error("booking sweep failed",
				logger.String("sweep", sw.name),
				logger.String("error", err.Error()),
			)
			continue
		}

		for _, b := range changed {
			s.logger.Debug("booking swept",
				logger.String("sweep", sw.name),
				logger.String("booking_id", b.ID),
				logger.String("listing_id", b.ListingID),
				logger.String("status", string(b.Status)),
			)
		}
		if len(changed) > 0 {
			s.logger.Info("booking sweep finished",
				logger.String("sweep", sw.name),
				logger.Int("changed", len(changed)),
				logger.Duration("took", time.Since(started)),
			)
		}
	}
}
