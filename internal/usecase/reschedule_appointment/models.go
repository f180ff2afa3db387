package reschedule_appointment

import (
	"time"

	"github.com/xsalon/scheduling-service/pkg/types"
)

// Request moves one appointment to a new date and time.
type Request struct {
	AppointmentID int64
	CustomerID    int64
	NewDate       time.Time
	NewStartTime  types.TimeString
}

// Response reports the appointment after the move.
type Response struct {
	AppointmentID    int64
	ScheduledDate    time.Time
	ScheduledTime    types.TimeString
	EstimatedEndTime types.TimeString
	Status           string
	QueuePosition    *int
	DayChanged       bool
}
