package get_available_slots

import "errors"

var (
	// ErrServiceUnavailable is returned when the service is missing or inactive.
	ErrServiceUnavailable = errors.New("get_available_slots: service unavailable")

	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("get_available_slots: internal error")
)
