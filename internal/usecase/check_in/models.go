package check_in

import "time"

// Request checks one customer in for their appointment.
type Request struct {
	AppointmentID int64
	CustomerID    int64
}

// Response reports the queue placement after check-in.
type Response struct {
	AppointmentID int64
	Status        string
	QueuePosition int
	CheckedInAt   time.Time
}
