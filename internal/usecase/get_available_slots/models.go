package get_available_slots

import (
	"time"

	"github.com/xsalon/scheduling-service/pkg/types"
)

// Request asks for the bookable start times of one service on one date.
type Request struct {
	ServiceID int64
	Date      time.Time
}

// Response lists every candidate slot with its availability flag.
type Response struct {
	Date            time.Time
	ServiceID       int64
	DurationMinutes int
	Slots           []Slot
}

// Slot is one candidate start time.
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}
