package update_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
	appointmentRepo "github.com/xsalon/scheduling-service/internal/infra/storage/appointment"
)

// UseCase applies staff lifecycle actions: start service, complete, no-show.
// Departures from the active set trigger a queue rebuild for the day.
type UseCase struct {
	appointmentRepo AppointmentRepository
	queue           QueueRecalculator
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	queue QueueRecalculator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		queue:           queue,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateStatus: appointment=%d, target=%s", req.AppointmentID, req.TargetStatus)

	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	target := domain.AppointmentStatus(req.TargetStatus)
	switch target {
	case domain.StatusInProgress, domain.StatusCompleted, domain.StatusNoShow:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStatus, req.TargetStatus)
	}

	now := uc.timeProvider.Now()

	var (
		response   *Response
		recalcDay  bool
		recalcDate time.Time
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		apt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		from := apt.Status

		switch target {
		case domain.StatusInProgress:
			err = apt.MarkInProgress(now)
		case domain.StatusCompleted:
			err = apt.MarkCompleted(now)
			recalcDay = true
		case domain.StatusNoShow:
			err = apt.MarkNoShow(now)
			recalcDay = true
		}
		if err != nil {
			if errors.Is(err, domain.ErrInvalidStatusTransition) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, from, target)
			}
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if req.AdminNotes != nil {
			apt.AdminNotes = req.AdminNotes
		}

		if _, err := uc.appointmentRepo.Update(txCtx, apt); err != nil {
			return fmt.Errorf("%w: failed to persist status change: %v", ErrInternal, err)
		}

		response = &Response{
			AppointmentID:         apt.ID,
			Status:                string(apt.Status),
			PaymentStatus:         string(apt.Payment.Status()),
			StartedAt:             apt.StartedAt,
			CompletedAt:           apt.CompletedAt,
			NoShowAt:              apt.NoShowAt,
			ActualDurationMinutes: apt.ActualDurationMinutes,
		}

		recalcDate = apt.ScheduledDate

		return nil
	})
	if err != nil {
		uc.logger.Warn("UpdateStatus: rejected for appointment=%d: %v", req.AppointmentID, err)
		return nil, err
	}

	// Rebuild the day queue after the transition commits so the departed
	// entry's position is reclaimed without gaps.
	if recalcDay {
		if err := uc.queue.RecalculateDay(ctx, recalcDate); err != nil {
			uc.logger.Error("UpdateStatus: queue recalculation failed for appointment=%d: %v", req.AppointmentID, err)
		}
	}

	uc.logger.Info("UpdateStatus: appointment id=%d moved to %s", response.AppointmentID, response.Status)
	return response, nil
}
