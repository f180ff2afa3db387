package check_in

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
	appointmentRepo "github.com/xsalon/scheduling-service/internal/infra/storage/appointment"
)

// UseCase checks a customer in for a same-day CONFIRMED appointment and
// places them in the day queue.
type UseCase struct {
	appointmentRepo AppointmentRepository
	queue           QueueAssigner
	txManager       TransactionManager
	timeProvider    TimeProvider
	policy          domain.SchedulingPolicy
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	queue QueueAssigner,
	txManager TransactionManager,
	policy domain.SchedulingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		queue:           queue,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		policy:          policy,
		logger:          logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckIn: appointment=%d, customer=%d", req.AppointmentID, req.CustomerID)

	if req.AppointmentID <= 0 || req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID and customerID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var response *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		apt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if apt.CustomerID != req.CustomerID {
			return ErrAccessDenied
		}

		if apt.Status != domain.StatusConfirmed {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, apt.Status, domain.StatusCheckedIn)
		}

		if err := validateWindow(apt, now, uc.policy.CheckInWindowMinutes); err != nil {
			return err
		}

		if err := apt.MarkCheckedIn(now); err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if _, err := uc.appointmentRepo.Update(txCtx, apt); err != nil {
			return fmt.Errorf("%w: failed to persist check-in: %v", ErrInternal, err)
		}

		position, err := uc.queue.AssignPosition(txCtx, apt)
		if err != nil {
			return fmt.Errorf("%w: failed to assign queue position: %v", ErrInternal, err)
		}

		response = &Response{
			AppointmentID: apt.ID,
			Status:        string(apt.Status),
			QueuePosition: position,
			CheckedInAt:   *apt.CheckedInAt,
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("CheckIn: rejected for appointment=%d: %v", req.AppointmentID, err)
		return nil, err
	}

	uc.logger.Info("CheckIn: appointment id=%d checked in at position=%d", response.AppointmentID, response.QueuePosition)
	return response, nil
}

// validateWindow enforces same-day check-in inside the allowed window: from
// windowMinutes before the scheduled start until the estimated end.
func validateWindow(apt *domain.Appointment, now time.Time, windowMinutes int) error {
	if !domain.SameDay(apt.ScheduledDate, now) {
		return ErrWrongDay
	}

	start, err := apt.StartsAt()
	if err != nil {
		return fmt.Errorf("%w: failed to resolve appointment start: %v", ErrInternal, err)
	}

	opens := start.Add(-time.Duration(windowMinutes) * time.Minute)
	if now.Before(opens) {
		return fmt.Errorf("%w: check-in opens at %s", ErrTooEarly, opens.Format("15:04"))
	}

	closes := start.Add(time.Duration(apt.EstimatedDurationMinutes) * time.Minute)
	if now.After(closes) {
		return ErrTooLate
	}

	return nil
}
