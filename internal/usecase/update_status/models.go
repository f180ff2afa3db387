package update_status

import "time"

// Request applies a staff status change to one appointment.
type Request struct {
	AppointmentID int64
	TargetStatus  string
	AdminNotes    *string
}

// Response reports the appointment after the transition.
type Response struct {
	AppointmentID         int64
	Status                string
	PaymentStatus         string
	StartedAt             *time.Time
	CompletedAt           *time.Time
	NoShowAt              *time.Time
	ActualDurationMinutes *int
}
