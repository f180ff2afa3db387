package check_in

import (
	"context"
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
)

// AppointmentRepository is the storage surface check-in needs.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
}

// QueueAssigner appends the checked-in appointment to the day queue.
type QueueAssigner interface {
	AssignPosition(ctx context.Context, apt *domain.Appointment) (int, error)
}

// TransactionManager runs the check-in atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
