package reorder_queue

import (
	"context"
	"time"

	queueModels "github.com/xsalon/scheduling-service/internal/service/queue/models"
)

type QueueService interface {
	Reorder(ctx context.Context, date time.Time, overrides []queueModels.PositionOverride) error
	QueueForDay(ctx context.Context, date time.Time) (*queueModels.QueueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
