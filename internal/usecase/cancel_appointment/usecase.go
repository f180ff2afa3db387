package cancel_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
	appointmentRepo "github.com/xsalon/scheduling-service/internal/infra/storage/appointment"
)

// UseCase cancels appointments. Customers need the configured notice before
// the scheduled start; unpaid appointments may be cancelled at any time.
// Staff cancellations bypass ownership and notice checks.
type UseCase struct {
	appointmentRepo AppointmentRepository
	queue           QueueRecalculator
	txManager       TransactionManager
	timeProvider    TimeProvider
	policy          domain.SchedulingPolicy
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	queue QueueRecalculator,
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
	uc.logger.Info("CancelAppointment: appointment=%d, requester=%d, staff=%t",
		req.AppointmentID, req.RequesterID, req.IsStaff)

	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var (
		response   *Response
		wasQueued  bool
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

		if !req.IsStaff && apt.CustomerID != req.RequesterID {
			return ErrAccessDenied
		}

		if !apt.CanTransitionTo(domain.StatusCancelled) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, apt.Status, domain.StatusCancelled)
		}

		// Paid appointments need advance notice from the customer. Unpaid
		// ones can always be abandoned.
		if !req.IsStaff && apt.Status != domain.StatusPendingPayment {
			start, err := apt.StartsAt()
			if err != nil {
				return fmt.Errorf("%w: failed to resolve appointment start: %v", ErrInternal, err)
			}
			deadline := start.Add(-time.Duration(uc.policy.CancelNoticeHours) * time.Hour)
			if now.After(deadline) {
				return fmt.Errorf("%w: cancellation requires %d hours notice", ErrCancelNoticePassed, uc.policy.CancelNoticeHours)
			}
		}

		wasQueued = apt.QueuePosition != nil
		recalcDate = apt.ScheduledDate

		if err := apt.MarkCancelled(now); err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if req.Reason != nil {
			if req.IsStaff {
				apt.AdminNotes = req.Reason
			} else {
				apt.Notes = req.Reason
			}
		}

		if _, err := uc.appointmentRepo.Update(txCtx, apt); err != nil {
			return fmt.Errorf("%w: failed to persist cancellation: %v", ErrInternal, err)
		}

		response = &Response{
			AppointmentID: apt.ID,
			Status:        string(apt.Status),
			PaymentStatus: string(apt.Payment.Status()),
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("CancelAppointment: rejected for appointment=%d: %v", req.AppointmentID, err)
		return nil, err
	}

	if wasQueued {
		if err := uc.queue.RecalculateDay(ctx, recalcDate); err != nil {
			uc.logger.Error("CancelAppointment: queue recalculation failed for appointment=%d: %v", req.AppointmentID, err)
		}
	}

	uc.logger.Info("CancelAppointment: appointment id=%d cancelled, payment=%s",
		response.AppointmentID, response.PaymentStatus)
	return response, nil
}
