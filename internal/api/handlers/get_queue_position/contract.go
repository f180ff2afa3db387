package get_queue_position

import (
	"context"

	queueModels "github.com/xsalon/scheduling-service/internal/service/queue/models"
)

type QueueService interface {
	PositionFor(ctx context.Context, appointmentID, requesterID int64, isStaff bool) (*queueModels.PositionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
