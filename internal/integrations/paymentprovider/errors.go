package paymentprovider

import "errors"

var (
	// ErrTransactionNotFound is returned when the provider has no record of the reference.
	ErrTransactionNotFound = errors.New("payment provider: transaction not found")

	// ErrInternal is returned on internal client errors.
	ErrInternal = errors.New("paymentprovider client: internal error")

	// ErrInvalidResponse is returned when the provider answers with an unexpected payload.
	ErrInvalidResponse = errors.New("paymentprovider client: invalid response")

	// ErrDeclined is returned when the provider rejects the initialization outright.
	ErrDeclined = errors.New("payment provider: transaction declined")
)
