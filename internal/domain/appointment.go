package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/xsalon/scheduling-service/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPendingPayment AppointmentStatus = "PENDING_PAYMENT"
	StatusConfirmed      AppointmentStatus = "CONFIRMED"
	StatusCheckedIn      AppointmentStatus = "CHECKED_IN"
	StatusInProgress     AppointmentStatus = "IN_PROGRESS"
	StatusCompleted      AppointmentStatus = "COMPLETED"
	StatusCancelled      AppointmentStatus = "CANCELLED"
	StatusNoShow         AppointmentStatus = "NO_SHOW"
)

// ErrInvalidStatusTransition is returned for any transition outside the table
// below. The wrapped message names the attempted from/to pair.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// validTransitions is the complete appointment lifecycle. Terminal states have
// no outgoing edges.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPendingPayment: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusCheckedIn, StatusInProgress, StatusCancelled, StatusNoShow},
	StatusCheckedIn:      {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress:     {StatusCompleted},
	StatusCompleted:      {},
	StatusCancelled:      {},
	StatusNoShow:         {},
}

// ValidAppointmentStatus reports whether s is a known status value.
func ValidAppointmentStatus(s string) bool {
	_, ok := validTransitions[AppointmentStatus(s)]
	return ok
}

// BlockingStatuses are the statuses that occupy calendar time: anything not
// cancelled and not a no-show. Completed appointments still block their slot.
var BlockingStatuses = []AppointmentStatus{
	StatusPendingPayment,
	StatusConfirmed,
	StatusCheckedIn,
	StatusInProgress,
	StatusCompleted,
}

// QueueStatuses form the active queue set for a business day.
var QueueStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusCheckedIn,
	StatusInProgress,
}

// Appointment is the central scheduling entity. Duration and price are
// snapshotted from the service at booking time so later catalog edits do not
// invalidate existing bookings.
type Appointment struct {
	ID         int64
	CustomerID int64
	ServiceID  int64

	ScheduledDate            time.Time // calendar day, time-of-day stripped
	ScheduledTime            types.TimeString
	EstimatedDurationMinutes int
	EstimatedEndTime         types.TimeString

	Status        AppointmentStatus
	QueuePosition *int

	CheckedInAt           *time.Time
	StartedAt             *time.Time
	CompletedAt           *time.Time
	NoShowAt              *time.Time
	ActualDurationMinutes *int

	Payment PaymentState

	Notes      *string
	AdminNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksSlot reports whether the appointment occupies calendar time
// (status not in {CANCELLED, NO_SHOW}).
func (a *Appointment) BlocksSlot() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// InQueueSet reports whether the appointment participates in the day's queue.
func (a *Appointment) InQueueSet() bool {
	return a.Status == StatusConfirmed || a.Status == StatusCheckedIn || a.Status == StatusInProgress
}

// IsTerminal reports whether the appointment reached a final state.
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled || a.Status == StatusNoShow
}

// CanTransitionTo reports whether moving to the target status is legal.
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	for _, allowed := range validTransitions[a.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the appointment to target or fails with
// ErrInvalidStatusTransition naming the attempted pair.
func (a *Appointment) TransitionTo(target AppointmentStatus) error {
	if !a.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, a.Status, target)
	}
	a.Status = target
	return nil
}

// RecomputeEstimatedEnd refreshes EstimatedEndTime from the scheduled start
// and the snapshotted duration. Must be called whenever either input changes.
func (a *Appointment) RecomputeEstimatedEnd() error {
	end, err := a.ScheduledTime.AddMinutes(a.EstimatedDurationMinutes)
	if err != nil {
		return err
	}
	a.EstimatedEndTime = end
	return nil
}

// StartsAt returns the scheduled start as an absolute instant.
func (a *Appointment) StartsAt() (time.Time, error) {
	return a.ScheduledTime.On(a.ScheduledDate)
}

// Interval returns the scheduled [start, end) interval in minutes since
// midnight, used for the half-open overlap test.
func (a *Appointment) Interval() (start, end int, err error) {
	start, err = a.ScheduledTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	return start, start + a.EstimatedDurationMinutes, nil
}

// MarkCheckedIn transitions to CHECKED_IN and records the check-in instant.
func (a *Appointment) MarkCheckedIn(now time.Time) error {
	if err := a.TransitionTo(StatusCheckedIn); err != nil {
		return err
	}
	a.CheckedInAt = &now
	return nil
}

// MarkInProgress transitions to IN_PROGRESS and records the start instant.
func (a *Appointment) MarkInProgress(now time.Time) error {
	if err := a.TransitionTo(StatusInProgress); err != nil {
		return err
	}
	a.StartedAt = &now
	return nil
}

// MarkCompleted transitions to COMPLETED, records the completion instant and
// derives the actual duration when the start instant is known.
func (a *Appointment) MarkCompleted(now time.Time) error {
	if err := a.TransitionTo(StatusCompleted); err != nil {
		return err
	}
	a.CompletedAt = &now
	if a.StartedAt != nil {
		minutes := int(now.Sub(*a.StartedAt).Round(time.Minute) / time.Minute)
		a.ActualDurationMinutes = &minutes
	}
	return nil
}

// MarkNoShow transitions to NO_SHOW. A paid advance is forfeited, so a PARTIAL
// payment becomes FAILED.
func (a *Appointment) MarkNoShow(now time.Time) error {
	if err := a.TransitionTo(StatusNoShow); err != nil {
		return err
	}
	a.NoShowAt = &now
	if partial, ok := a.Payment.(PaymentPartial); ok {
		a.Payment = PaymentFailed{
			AdvanceAmount: partial.AdvanceAmount,
			TotalAmount:   partial.TotalAmount,
			Reference:     partial.Reference,
		}
	}
	return nil
}

// MarkCancelled transitions to CANCELLED. A paid advance moves to
// PENDING_REFUND for the refund workflow.
func (a *Appointment) MarkCancelled(now time.Time) error {
	if err := a.TransitionTo(StatusCancelled); err != nil {
		return err
	}
	if partial, ok := a.Payment.(PaymentPartial); ok {
		a.Payment = PaymentPendingRefund{
			AdvanceAmount: partial.AdvanceAmount,
			TotalAmount:   partial.TotalAmount,
			Reference:     partial.Reference,
			RequestedAt:   now,
		}
	}
	a.QueuePosition = nil
	return nil
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DayOf strips the time-of-day component.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
