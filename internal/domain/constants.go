package domain

// Default scheduling values, overridable through configuration.
const (
	DefaultSlotGranularityMinutes     = 15
	DefaultHourlyCapacity             = 5
	DefaultBookingHorizonDays         = 60
	DefaultCancelNoticeHours          = 24
	DefaultRescheduleNoticeHours      = 12
	DefaultCheckInWindowMinutes       = 30
	DefaultWaitEstimateMinutes        = 30
	DefaultAdvancePaymentPercentage   = 50
	DefaultStalePaymentThresholdHours = 24
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SchedulingPolicy carries the scheduling knobs as explicit values injected
// into the availability and admission logic, never read from globals.
type SchedulingPolicy struct {
	SlotGranularityMinutes     int
	HourlyCapacity             int
	BookingHorizonDays         int
	CancelNoticeHours          int
	RescheduleNoticeHours      int
	CheckInWindowMinutes       int
	DefaultWaitEstimateMinutes int
}

// DefaultSchedulingPolicy returns the policy used when configuration does not
// override individual values.
func DefaultSchedulingPolicy() SchedulingPolicy {
	return SchedulingPolicy{
		SlotGranularityMinutes:     DefaultSlotGranularityMinutes,
		HourlyCapacity:             DefaultHourlyCapacity,
		BookingHorizonDays:         DefaultBookingHorizonDays,
		CancelNoticeHours:          DefaultCancelNoticeHours,
		RescheduleNoticeHours:      DefaultRescheduleNoticeHours,
		CheckInWindowMinutes:       DefaultCheckInWindowMinutes,
		DefaultWaitEstimateMinutes: DefaultWaitEstimateMinutes,
	}
}
