package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const layout = "15:04"

const minutesPerDay = 24 * 60

// TimeString represents a time of day in 24-hour "HH:MM" form.
// It is stored as text and compared by minutes since midnight, which keeps
// schedule arithmetic independent of dates and time zones.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layout))
}

// NewTimeStringFromString parses s and validates the "HH:MM" format.
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate reports whether the value is a canonical "HH:MM" time. Only the
// zero-padded form passes; values compare by string equality elsewhere, so
// "9:00" and "09:00" must not both be valid.
func (t TimeString) Validate() error {
	parsed, err := time.Parse(layout, string(t))
	if err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	if parsed.Format(layout) != string(t) {
		return fmt.Errorf("invalid time string format: want HH:MM, got %q", t)
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(layout, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %v", err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Hour returns the clock hour (0-23) of the value.
func (t TimeString) Hour() (int, error) {
	parsed, err := time.Parse(layout, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %v", err)
	}
	return parsed.Hour(), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Malformed values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a > b
}

// AddMinutes returns the time m minutes after t, wrapping past midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total = ((total+m)%minutesPerDay + minutesPerDay) % minutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// On combines the time of day with the calendar day of date.
func (t TimeString) On(date time.Time) (time.Time, error) {
	total, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), total/60, total%60, 0, 0, date.Location()), nil
}

// Scan implements sql.Scanner. Accepts "HH:MM" and "HH:MM:SS" text values.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
