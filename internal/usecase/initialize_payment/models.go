package initialize_payment

// Request starts the deposit payment for one appointment.
type Request struct {
	AppointmentID int64
	CustomerID    int64
	ReturnURL     string
}

// Response carries the hosted checkout URL for the customer to complete.
type Response struct {
	AppointmentID int64
	Reference     string
	CheckoutURL   string
	Amount        int64
	Currency      string
}
