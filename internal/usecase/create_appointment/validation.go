package create_appointment

import (
	"fmt"
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
	"github.com/xsalon/scheduling-service/pkg/types"
)

func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate rejects past dates and dates beyond the booking horizon.
func validateDate(date, now time.Time, horizonDays int) error {
	today := domain.DayOf(now)
	requested := domain.DayOf(date)

	if requested.Before(today) {
		return ErrDateInPast
	}

	if horizonDays > 0 && requested.After(today.AddDate(0, 0, horizonDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarAhead, horizonDays)
	}

	return nil
}

// validateBusinessHours checks the interval fits fully inside opening hours.
func validateBusinessHours(rule *domain.CalendarRule, start types.TimeString, durationMinutes int) error {
	if rule == nil || !rule.Open() {
		return ErrOutsideBusinessHours
	}

	if !rule.FitsBusinessHours(start, durationMinutes) {
		return ErrOutsideBusinessHours
	}

	return nil
}

// checkCustomerOverlap rejects the interval if the same customer already has
// a blocking appointment intersecting it. excludeID skips one appointment,
// used when moving an existing booking.
func checkCustomerOverlap(
	customerID int64,
	start types.TimeString,
	durationMinutes int,
	appointments []*domain.Appointment,
	excludeID int64,
) error {
	startMin, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: failed to parse start time: %v", ErrInternal, err)
	}
	endMin := startMin + durationMinutes

	for _, apt := range appointments {
		if apt.CustomerID != customerID || apt.ID == excludeID {
			continue
		}

		aptStart, aptEnd, err := apt.Interval()
		if err != nil {
			return fmt.Errorf("%w: failed to parse appointment interval: %v", ErrInternal, err)
		}

		if startMin < aptEnd && aptStart < endMin {
			return ErrCustomerDoubleBooking
		}
	}

	return nil
}

// checkHourlyCapacity enforces the per-clock-hour cap on appointment starts.
func checkHourlyCapacity(
	start types.TimeString,
	appointments []*domain.Appointment,
	capacity int,
	excludeID int64,
) error {
	hour, err := start.Hour()
	if err != nil {
		return fmt.Errorf("%w: failed to parse start time: %v", ErrInternal, err)
	}

	count := 0
	for _, apt := range appointments {
		if apt.ID == excludeID {
			continue
		}
		aptHour, err := apt.ScheduledTime.Hour()
		if err != nil {
			continue
		}
		if aptHour == hour {
			count++
		}
	}

	if count >= capacity {
		return fmt.Errorf("%w: %d/%d starts taken in hour %02d:00", ErrSlotFullyBooked, count, capacity, hour)
	}

	return nil
}
