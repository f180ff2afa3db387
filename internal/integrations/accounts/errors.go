package accounts

import "errors"

var (
	// ErrCustomerNotFound is returned when the accounts service has no such customer.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInternal is returned on internal client errors.
	ErrInternal = errors.New("accounts client: internal error")

	// ErrInvalidResponse is returned when the accounts service answers with an unexpected payload.
	ErrInvalidResponse = errors.New("accounts client: invalid response")

	// ErrServiceDegraded is returned when the accounts service is unreachable
	// and the caller should proceed without profile enrichment.
	ErrServiceDegraded = errors.New("accounts service unavailable: graceful degradation applied")
)
