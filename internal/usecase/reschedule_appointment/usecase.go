package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
	appointmentRepo "github.com/xsalon/scheduling-service/internal/infra/storage/appointment"
	calendarRepo "github.com/xsalon/scheduling-service/internal/infra/storage/calendar"
)

// UseCase moves a CONFIRMED appointment to a new slot. The admission checks
// run again for the new date and time with the moved appointment excluded
// from its own overlap and capacity counts. The appointment mutates in
// place; no new record is created.
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendarRepo    CalendarRepository
	queue           QueueRecalculator
	txManager       TransactionManager
	timeProvider    TimeProvider
	policy          domain.SchedulingPolicy
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	calendarRepo CalendarRepository,
	queue QueueRecalculator,
	txManager TransactionManager,
	policy domain.SchedulingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendarRepo:    calendarRepo,
		queue:           queue,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		policy:          policy,
		logger:          logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: appointment=%d, customer=%d, newDate=%s, newTime=%s",
		req.AppointmentID, req.CustomerID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		response   *Response
		dayChanged bool
		oldDate    time.Time
		wasQueued  bool
	)

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
			return ErrNotReschedulable
		}

		currentStart, err := apt.StartsAt()
		if err != nil {
			return fmt.Errorf("%w: failed to resolve current start: %v", ErrInternal, err)
		}
		deadline := currentStart.Add(-time.Duration(uc.policy.RescheduleNoticeHours) * time.Hour)
		if now.After(deadline) {
			return fmt.Errorf("%w: rescheduling requires %d hours notice", ErrRescheduleWindowPassed, uc.policy.RescheduleNoticeHours)
		}

		if err := validateDate(req.NewDate, now, uc.policy.BookingHorizonDays); err != nil {
			return err
		}

		rule, err := uc.calendarRepo.GetByWeekday(txCtx, int(req.NewDate.Weekday()))
		if err != nil {
			if errors.Is(err, calendarRepo.ErrRuleNotFound) {
				return ErrOutsideBusinessHours
			}
			return fmt.Errorf("%w: failed to get calendar rule: %v", ErrInternal, err)
		}
		if !rule.FitsBusinessHours(req.NewStartTime, apt.EstimatedDurationMinutes) {
			return ErrOutsideBusinessHours
		}

		appointments, err := uc.appointmentRepo.GetByDate(txCtx, req.NewDate, true)
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		if err := checkCustomerOverlap(apt.CustomerID, req.NewStartTime, apt.EstimatedDurationMinutes, appointments, apt.ID); err != nil {
			return err
		}

		if err := checkHourlyCapacity(req.NewStartTime, appointments, uc.policy.HourlyCapacity, apt.ID); err != nil {
			return err
		}

		oldDate = apt.ScheduledDate
		wasQueued = apt.QueuePosition != nil
		dayChanged = !domain.SameDay(apt.ScheduledDate, req.NewDate)

		apt.ScheduledDate = domain.DayOf(req.NewDate)
		apt.ScheduledTime = req.NewStartTime
		if err := apt.RecomputeEstimatedEnd(); err != nil {
			return fmt.Errorf("%w: failed to recompute end time: %v", ErrInternal, err)
		}

		// Leaving the day means leaving its queue.
		if dayChanged {
			apt.QueuePosition = nil
		}

		if _, err := uc.appointmentRepo.Update(txCtx, apt); err != nil {
			return fmt.Errorf("%w: failed to persist reschedule: %v", ErrInternal, err)
		}

		response = &Response{
			AppointmentID:    apt.ID,
			ScheduledDate:    apt.ScheduledDate,
			ScheduledTime:    apt.ScheduledTime,
			EstimatedEndTime: apt.EstimatedEndTime,
			Status:           string(apt.Status),
			QueuePosition:    apt.QueuePosition,
			DayChanged:       dayChanged,
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("RescheduleAppointment: rejected for appointment=%d: %v", req.AppointmentID, err)
		return nil, err
	}

	// The old day's queue closes the gap left by the departed entry.
	if dayChanged && wasQueued {
		if err := uc.queue.RecalculateDay(ctx, oldDate); err != nil {
			uc.logger.Error("RescheduleAppointment: queue recalculation failed for date=%s: %v",
				oldDate.Format(domain.DateFormat), err)
		}
	}

	uc.logger.Info("RescheduleAppointment: appointment id=%d moved to %s %s",
		response.AppointmentID, response.ScheduledDate.Format(domain.DateFormat), response.ScheduledTime)
	return response, nil
}
