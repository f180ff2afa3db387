package update_appointment_status

import (
	"time"

	updateStatus "github.com/xsalon/scheduling-service/internal/usecase/update_status"
)

// UpdateStatusRequest is the HTTP request model.
type UpdateStatusRequest struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}

// UpdateStatusResponse is the HTTP response model.
type UpdateStatusResponse struct {
	ID                    int64      `json:"id"`
	Status                string     `json:"status"`
	PaymentStatus         string     `json:"paymentStatus"`
	StartedAt             *time.Time `json:"startedAt,omitempty"`
	CompletedAt           *time.Time `json:"completedAt,omitempty"`
	NoShowAt              *time.Time `json:"noShowAt,omitempty"`
	ActualDurationMinutes *int       `json:"actualDurationMinutes,omitempty"`
}

// ToUseCaseRequest converts the HTTP request to the use case model.
func (r *UpdateStatusRequest) ToUseCaseRequest(appointmentID int64) *updateStatus.Request {
	return &updateStatus.Request{
		AppointmentID: appointmentID,
		TargetStatus:  r.Status,
		AdminNotes:    r.AdminNotes,
	}
}

// FromUseCaseResponse converts the use case result to the HTTP model.
func FromUseCaseResponse(resp *updateStatus.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		ID:                    resp.AppointmentID,
		Status:                resp.Status,
		PaymentStatus:         resp.PaymentStatus,
		StartedAt:             resp.StartedAt,
		CompletedAt:           resp.CompletedAt,
		NoShowAt:              resp.NoShowAt,
		ActualDurationMinutes: resp.ActualDurationMinutes,
	}
}
