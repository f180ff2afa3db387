package create_appointment

import (
	"time"

	"github.com/xsalon/scheduling-service/pkg/types"
)

// Request asks to reserve one service slot for one customer.
type Request struct {
	CustomerID int64
	ServiceID  int64
	Date       time.Time
	StartTime  types.TimeString
	Notes      *string
}

// Response is the freshly admitted appointment awaiting payment.
type Response struct {
	ID                       int64
	CustomerID               int64
	ServiceID                int64
	ScheduledDate            time.Time
	ScheduledTime            types.TimeString
	EstimatedDurationMinutes int
	EstimatedEndTime         types.TimeString
	Status                   string
	PaymentStatus            string
	AdvanceAmount            int64
	TotalAmount              int64
	Notes                    *string
	CreatedAt                time.Time
}
