package check_in

import (
	"time"

	checkIn "github.com/xsalon/scheduling-service/internal/usecase/check_in"
)

// CheckInResponse is the HTTP response model.
type CheckInResponse struct {
	ID            int64     `json:"id"`
	Status        string    `json:"status"`
	QueuePosition int       `json:"queuePosition"`
	CheckedInAt   time.Time `json:"checkedInAt"`
}

// FromUseCaseResponse converts the use case result to the HTTP model.
func FromUseCaseResponse(resp *checkIn.Response) *CheckInResponse {
	return &CheckInResponse{
		ID:            resp.AppointmentID,
		Status:        resp.Status,
		QueuePosition: resp.QueuePosition,
		CheckedInAt:   resp.CheckedInAt,
	}
}
