package reschedule_appointment

import (
	"fmt"
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
	"github.com/xsalon/scheduling-service/pkg/types"
)

func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}

	if req.NewStartTime.IsZero() {
		return fmt.Errorf("%w: newStartTime is required", ErrInvalidInput)
	}

	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newStartTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

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

// checkCustomerOverlap rejects the new interval if another blocking
// appointment of the same customer intersects it. The appointment being
// moved is excluded from the check.
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

// checkHourlyCapacity enforces the per-clock-hour cap, excluding the
// appointment being moved.
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
