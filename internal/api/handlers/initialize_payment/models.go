package initialize_payment

import (
	initializePayment "github.com/xsalon/scheduling-service/internal/usecase/initialize_payment"
)

// InitializePaymentRequest is the HTTP request model.
type InitializePaymentRequest struct {
	ReturnURL string `json:"returnUrl,omitempty"`
}

// InitializePaymentResponse is the HTTP response model.
type InitializePaymentResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	Reference     string `json:"reference"`
	CheckoutURL   string `json:"checkoutUrl"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
}

// ToUseCaseRequest converts the HTTP request to the use case model.
func (r *InitializePaymentRequest) ToUseCaseRequest(appointmentID, customerID int64) *initializePayment.Request {
	return &initializePayment.Request{
		AppointmentID: appointmentID,
		CustomerID:    customerID,
		ReturnURL:     r.ReturnURL,
	}
}

// FromUseCaseResponse converts the use case result to the HTTP model.
func FromUseCaseResponse(resp *initializePayment.Response) *InitializePaymentResponse {
	return &InitializePaymentResponse{
		AppointmentID: resp.AppointmentID,
		Reference:     resp.Reference,
		CheckoutURL:   resp.CheckoutURL,
		Amount:        resp.Amount,
		Currency:      resp.Currency,
	}
}
