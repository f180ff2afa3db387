package sweeper

import (
	"context"
	"time"
)

// AppointmentRepository cancels unpaid appointments past the threshold.
type AppointmentRepository interface {
	CancelStalePendingPayment(ctx context.Context, cutoff time.Time) (int64, error)
}

// Logger is the logging surface the sweeper needs.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sweeper periodically cancels appointments stuck in PENDING_PAYMENT longer
// than the configured threshold. The sweep is logged only; no user is
// notified and no other state is touched.
type Sweeper struct {
	appointments AppointmentRepository
	interval     time.Duration
	threshold    time.Duration
	logger       Logger
}

func New(appointments AppointmentRepository, interval, threshold time.Duration, logger Logger) *Sweeper {
	return &Sweeper{
		appointments: appointments,
		interval:     interval,
		threshold:    threshold,
		logger:       logger,
	}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("Sweeper: started, interval=%s threshold=%s", s.interval, s.threshold)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sweeper: stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.threshold)

	cancelled, err := s.appointments.CancelStalePendingPayment(ctx, cutoff)
	if err != nil {
		s.logger.Error("Sweeper: sweep failed: %v", err)
		return
	}

	if cancelled > 0 {
		s.logger.Info("Sweeper: cancelled %d stale unpaid appointments older than %s",
			cancelled, cutoff.Format(time.RFC3339))
	}
}
