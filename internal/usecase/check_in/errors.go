package check_in

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("check_in: appointment not found")

	// ErrAccessDenied is returned when the appointment belongs to someone else.
	ErrAccessDenied = errors.New("check_in: access denied")

	// ErrInvalidStatusTransition is returned when the appointment is not CONFIRMED.
	ErrInvalidStatusTransition = errors.New("check_in: invalid status transition")

	// ErrWrongDay is returned when check-in is attempted on a different calendar
	// day than the appointment.
	ErrWrongDay = errors.New("check_in: appointment is not scheduled for today")

	// ErrTooEarly is returned when check-in is attempted before the opening of
	// the check-in window.
	ErrTooEarly = errors.New("check_in: too early to check in")

	// ErrTooLate is returned when the appointment's time slot has fully passed.
	ErrTooLate = errors.New("check_in: too late to check in")

	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("check_in: invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("check_in: internal error")
)
