package domain

import "time"

// ServiceDefinition is a bookable service from the catalog. The bilingual
// display fields are opaque to scheduling; only price, duration and the active
// flag participate in booking decisions.
type ServiceDefinition struct {
	ID            int64
	NameEN        string
	NameAM        string
	DescriptionEN *string
	DescriptionAM *string

	Price           int64 // whole ETB
	DurationMinutes int
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Bookable reports whether the service can currently be booked.
func (s *ServiceDefinition) Bookable() bool {
	return s.IsActive && s.DurationMinutes > 0
}
