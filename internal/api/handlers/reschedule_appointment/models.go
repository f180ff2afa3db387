package reschedule_appointment

import (
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
	rescheduleAppointment "github.com/xsalon/scheduling-service/internal/usecase/reschedule_appointment"
	"github.com/xsalon/scheduling-service/pkg/types"
)

// RescheduleAppointmentRequest is the HTTP request model.
type RescheduleAppointmentRequest struct {
	NewDate      string `json:"newDate"`      // "2025-11-03"
	NewStartTime string `json:"newStartTime"` // "10:30"
}

// RescheduleAppointmentResponse is the HTTP response model.
type RescheduleAppointmentResponse struct {
	ID               int64  `json:"id"`
	ScheduledDate    string `json:"scheduledDate"`
	ScheduledTime    string `json:"scheduledTime"`
	EstimatedEndTime string `json:"estimatedEndTime"`
	Status           string `json:"status"`
	QueuePosition    *int   `json:"queuePosition,omitempty"`
	DayChanged       bool   `json:"dayChanged"`
}

// ToUseCaseRequest converts the HTTP request, parsing date and time.
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(appointmentID, customerID int64) (*rescheduleAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		CustomerID:    customerID,
		NewDate:       date,
		NewStartTime:  startTime,
	}, nil
}

// FromUseCaseResponse converts the use case result to the HTTP model.
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *RescheduleAppointmentResponse {
	return &RescheduleAppointmentResponse{
		ID:               resp.AppointmentID,
		ScheduledDate:    resp.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime:    resp.ScheduledTime.String(),
		EstimatedEndTime: resp.EstimatedEndTime.String(),
		Status:           resp.Status,
		QueuePosition:    resp.QueuePosition,
		DayChanged:       resp.DayChanged,
	}
}
