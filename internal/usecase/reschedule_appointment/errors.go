package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrAccessDenied is returned when the appointment belongs to someone else.
	ErrAccessDenied = errors.New("reschedule_appointment: access denied")

	// ErrNotReschedulable is returned when the appointment is not CONFIRMED.
	ErrNotReschedulable = errors.New("reschedule_appointment: only confirmed appointments can be rescheduled")

	// ErrRescheduleWindowPassed is returned when the request arrives with less
	// than the required notice before the current start.
	ErrRescheduleWindowPassed = errors.New("reschedule_appointment: reschedule window has passed")

	// ErrDateInPast is returned when the new date is before today.
	ErrDateInPast = errors.New("reschedule_appointment: date is in the past")

	// ErrDateTooFarAhead is returned when the new date exceeds the booking horizon.
	ErrDateTooFarAhead = errors.New("reschedule_appointment: date is too far ahead")

	// ErrOutsideBusinessHours is returned when the new slot does not fit inside
	// opening hours.
	ErrOutsideBusinessHours = errors.New("reschedule_appointment: outside business hours")

	// ErrCustomerDoubleBooking is returned when another of the customer's
	// appointments overlaps the new slot.
	ErrCustomerDoubleBooking = errors.New("reschedule_appointment: customer already booked for this time")

	// ErrSlotFullyBooked is returned when the new clock hour has reached capacity.
	ErrSlotFullyBooked = errors.New("reschedule_appointment: slot is fully booked")

	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
