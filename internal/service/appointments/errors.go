package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied is returned when a customer asks for someone else's appointment.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned for malformed filters.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("appointments service: internal error")
)
