package create_appointment

import (
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
	createAppointment "github.com/xsalon/scheduling-service/internal/usecase/create_appointment"
	"github.com/xsalon/scheduling-service/pkg/types"
)

// CreateAppointmentRequest is the HTTP request model.
type CreateAppointmentRequest struct {
	ServiceID int64   `json:"serviceId"`
	Date      string  `json:"date"`      // "2025-11-03"
	StartTime string  `json:"startTime"` // "10:30"
	Notes     *string `json:"notes,omitempty"`
}

// AppointmentResponse is the HTTP response model.
type AppointmentResponse struct {
	ID                       int64   `json:"id"`
	CustomerID               int64   `json:"customerId"`
	ServiceID                int64   `json:"serviceId"`
	ScheduledDate            string  `json:"scheduledDate"`
	ScheduledTime            string  `json:"scheduledTime"`
	EstimatedDurationMinutes int     `json:"estimatedDurationMinutes"`
	EstimatedEndTime         string  `json:"estimatedEndTime"`
	Status                   string  `json:"status"`
	PaymentStatus            string  `json:"paymentStatus"`
	AdvanceAmount            int64   `json:"advanceAmount"`
	TotalAmount              int64   `json:"totalAmount"`
	Notes                    *string `json:"notes,omitempty"`
	CreatedAt                string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing date and time.
func (r *CreateAppointmentRequest) ToUseCaseRequest(customerID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerID: customerID,
		ServiceID:  r.ServiceID,
		Date:       date,
		StartTime:  startTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case result to the HTTP model.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                       resp.ID,
		CustomerID:               resp.CustomerID,
		ServiceID:                resp.ServiceID,
		ScheduledDate:            resp.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime:            resp.ScheduledTime.String(),
		EstimatedDurationMinutes: resp.EstimatedDurationMinutes,
		EstimatedEndTime:         resp.EstimatedEndTime.String(),
		Status:                   resp.Status,
		PaymentStatus:            resp.PaymentStatus,
		AdvanceAmount:            resp.AdvanceAmount,
		TotalAmount:              resp.TotalAmount,
		Notes:                    resp.Notes,
		CreatedAt:                resp.CreatedAt.Format(time.RFC3339),
	}
}
