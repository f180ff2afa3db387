package salonconfig

import "errors"

var (
	// ErrServiceNotFound is returned when the catalog has no such service.
	ErrServiceNotFound = errors.New("service not found")

	// ErrSettingsNotFound is returned when the salon settings row is missing.
	ErrSettingsNotFound = errors.New("salon settings not found")

	// ErrInvalidInput is returned for malformed working-hour updates.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("salonconfig service: internal error")
)
