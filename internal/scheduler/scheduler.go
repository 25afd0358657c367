package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type stayCompleter interface {
	CompletePastCheckouts(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically sweeps confirmed bookings whose checkout day has
// passed and marks the stays completed.
type Scheduler struct {
	reservations stayCompleter
	interval     time.Duration
	logger       logger.Logger
}

func New(
	reservations stayCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservations: reservations,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

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
	completed, err := s.reservations.CompletePastCheckouts(ctx)
	if err != nil {
		s.logger.Error("failed to complete past checkouts",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range completed {
		s.logger.Info("stay completed",
			logger.Int64("booking_id", b.ID),
			logger.String("guest", b.GuestName),
			logger.String("check_out", b.CheckOut.Format("2006-01-02")),
		)
	}
}
