package cancel_appointment

// Request cancels one appointment. Staff cancellations skip the ownership
// and notice checks.
type Request struct {
	AppointmentID int64
	RequesterID   int64
	IsStaff       bool
	Reason        *string
}

// Response reports the appointment after cancellation.
type Response struct {
	AppointmentID int64
	Status        string
	PaymentStatus string
}
