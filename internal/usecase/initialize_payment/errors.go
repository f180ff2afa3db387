package initialize_payment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("initialize_payment: appointment not found")

	// ErrAccessDenied is returned when the appointment belongs to someone else.
	ErrAccessDenied = errors.New("initialize_payment: access denied")

	// ErrNotAwaitingPayment is returned when the appointment no longer needs a
	// deposit, either already paid or in a terminal state.
	ErrNotAwaitingPayment = errors.New("initialize_payment: appointment is not awaiting payment")

	// ErrCustomerNotFound is returned when the accounts service has no such customer.
	ErrCustomerNotFound = errors.New("initialize_payment: customer not found")

	// ErrProviderRejected is returned when the gateway declines the initialization.
	ErrProviderRejected = errors.New("initialize_payment: payment provider rejected the transaction")

	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("initialize_payment: invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("initialize_payment: internal error")
)
