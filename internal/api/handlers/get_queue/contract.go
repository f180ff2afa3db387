package get_queue

import (
	"context"
	"time"

	queueModels "github.com/xsalon/scheduling-service/internal/service/queue/models"
)

type QueueService interface {
	QueueForDay(ctx context.Context, date time.Time) (*queueModels.QueueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
