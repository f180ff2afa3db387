package get_available_slots

import (
	"context"
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
)

// AppointmentRepository loads the day's booking state.
type AppointmentRepository interface {
	GetByDate(ctx context.Context, date time.Time, onlyBlocking bool) ([]*domain.Appointment, error)
}

// CalendarRepository provides the weekday opening rules.
type CalendarRepository interface {
	GetByWeekday(ctx context.Context, weekday int) (*domain.CalendarRule, error)
}

// ServiceCatalogRepository provides service definitions.
type ServiceCatalogRepository interface {
	GetByID(ctx context.Context, serviceID int64) (*domain.ServiceDefinition, error)
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
