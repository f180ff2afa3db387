package confirm_payment

// Request resolves the outcome of one payment reference.
type Request struct {
	Reference string
}

// Response reports the appointment state after confirmation.
type Response struct {
	AppointmentID int64
	Status        string
	PaymentStatus string
	QueuePosition *int
	Succeeded     bool
}
