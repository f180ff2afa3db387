package cancel_appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("cancel_appointment: appointment not found")

	// ErrAccessDenied is returned when the appointment belongs to someone else.
	ErrAccessDenied = errors.New("cancel_appointment: access denied")

	// ErrCancelNoticePassed is returned when a customer cancels with less than
	// the required notice before the scheduled start.
	ErrCancelNoticePassed = errors.New("cancel_appointment: cancellation notice period has passed")

	// ErrInvalidStatusTransition is returned when the appointment cannot be
	// cancelled from its current status.
	ErrInvalidStatusTransition = errors.New("cancel_appointment: invalid status transition")

	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("cancel_appointment: invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("cancel_appointment: internal error")
)
