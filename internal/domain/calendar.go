package domain

import (
	"time"

	"github.com/xsalon/scheduling-service/pkg/types"
)

// CalendarRule holds the opening hours for one weekday (0 = Sunday).
type CalendarRule struct {
	ID          int64
	Weekday     int
	OpeningTime types.TimeString
	ClosingTime types.TimeString
	IsClosed    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open reports whether the salon accepts appointments on this weekday.
func (r *CalendarRule) Open() bool {
	return !r.IsClosed && !r.OpeningTime.IsZero() && !r.ClosingTime.IsZero()
}

// FitsBusinessHours reports whether an appointment starting at start with the
// given duration lies entirely inside opening hours. The end bound is
// inclusive: an appointment may end exactly at closing time.
func (r *CalendarRule) FitsBusinessHours(start types.TimeString, durationMinutes int) bool {
	if !r.Open() {
		return false
	}

	startMin, err := start.Minutes()
	if err != nil {
		return false
	}
	openMin, err := r.OpeningTime.Minutes()
	if err != nil {
		return false
	}
	closeMin, err := r.ClosingTime.Minutes()
	if err != nil {
		return false
	}

	return startMin >= openMin && startMin+durationMinutes <= closeMin
}
