package cancel_appointment

// CancelAppointmentRequest is the HTTP request model.
type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// CancelAppointmentResponse is the HTTP response model.
type CancelAppointmentResponse struct {
	ID            int64  `json:"id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}
