package reschedule_appointment

import (
	"context"
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
)

// AppointmentRepository is the storage surface rescheduling needs.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByDate(ctx context.Context, date time.Time, onlyBlocking bool) ([]*domain.Appointment, error)
	Update(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
}

// CalendarRepository provides the weekday opening rules.
type CalendarRepository interface {
	GetByWeekday(ctx context.Context, weekday int) (*domain.CalendarRule, error)
}

// QueueRecalculator rebuilds a day's queue after an entry leaves it.
type QueueRecalculator interface {
	RecalculateDay(ctx context.Context, date time.Time) error
}

// TransactionManager runs the re-validation and the move as one serializable
// unit, the same contract admission uses.
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
