package create_appointment

import "errors"

var (
	// ErrServiceUnavailable is returned when the service is missing or inactive.
	ErrServiceUnavailable = errors.New("create_appointment: service unavailable")

	// ErrCustomerNotFound is returned when the accounts service has no such customer.
	ErrCustomerNotFound = errors.New("create_appointment: customer not found")

	// ErrCustomerInactive is returned when the customer account is deactivated.
	ErrCustomerInactive = errors.New("create_appointment: customer account is inactive")

	// ErrDateInPast is returned when the requested date is before today.
	ErrDateInPast = errors.New("create_appointment: date is in the past")

	// ErrDateTooFarAhead is returned when the date exceeds the booking horizon.
	ErrDateTooFarAhead = errors.New("create_appointment: date is too far ahead")

	// ErrOutsideBusinessHours is returned when the salon is closed that day or
	// the requested interval does not fit inside opening hours.
	ErrOutsideBusinessHours = errors.New("create_appointment: outside business hours")

	// ErrCustomerDoubleBooking is returned when the customer already has an
	// overlapping appointment on that date.
	ErrCustomerDoubleBooking = errors.New("create_appointment: customer already booked for this time")

	// ErrSlotFullyBooked is returned when the clock hour has reached capacity.
	ErrSlotFullyBooked = errors.New("create_appointment: slot is fully booked")

	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("create_appointment: internal error")
)
