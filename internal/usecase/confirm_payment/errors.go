package confirm_payment

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment carries the reference.
	ErrAppointmentNotFound = errors.New("confirm_payment: appointment not found")

	// ErrTransactionNotFound is returned when the gateway has no record of the reference.
	ErrTransactionNotFound = errors.New("confirm_payment: transaction not found")

	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("confirm_payment: internal error")
)
