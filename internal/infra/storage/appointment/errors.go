package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("appointment.repository: failed to scan row")

	// ErrInvalidPaymentState is returned when stored payment columns do not
	// form a valid payment state
	ErrInvalidPaymentState = errors.New("appointment.repository: invalid payment state")
)
