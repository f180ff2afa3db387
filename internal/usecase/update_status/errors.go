package update_status

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("update_status: appointment not found")

	// ErrInvalidStatusTransition is returned for transitions outside the
	// lifecycle table.
	ErrInvalidStatusTransition = errors.New("update_status: invalid status transition")

	// ErrUnsupportedStatus is returned when the target is not a staff-settable
	// status.
	ErrUnsupportedStatus = errors.New("update_status: unsupported target status")

	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("update_status: invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("update_status: internal error")
)
