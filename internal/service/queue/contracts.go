package queue

import (
	"context"
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
)

// AppointmentRepository is the storage surface the queue manager needs.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetQueueForDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	UpdateQueuePosition(ctx context.Context, id int64, position *int) error
}

// TransactionManager serializes queue rewrites per day.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
