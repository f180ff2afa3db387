package domain

import "time"

// SalonSettings is the singleton salon configuration record.
type SalonSettings struct {
	ID         int64
	NameEN     string
	NameAM     string
	LocationEN string
	LocationAM string

	ContactPhone string
	ContactEmail string

	// AdvancePaymentPercentage is the share of the service price (0-100)
	// collected as a deposit before an appointment is confirmed.
	AdvancePaymentPercentage int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AdvanceAmount computes the deposit for the given service price.
func (s *SalonSettings) AdvanceAmount(price int64) int64 {
	return AdvanceAmountFor(price, s.AdvancePaymentPercentage)
}
