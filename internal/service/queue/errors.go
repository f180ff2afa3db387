package queue

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied is returned when a customer looks up someone else's
	// appointment.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotInQueue is returned when the appointment holds no queue position.
	ErrNotInQueue = errors.New("appointment is not in the day queue")

	// ErrInvalidReorder is returned when an override names an appointment
	// outside the queue, repeats one, or asks for a position below 1.
	ErrInvalidReorder = errors.New("invalid queue reorder")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("queue service: internal error")
)
