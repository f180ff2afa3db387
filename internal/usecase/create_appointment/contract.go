package create_appointment

import (
	"context"
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
	"github.com/xsalon/scheduling-service/internal/integrations/accounts"
)

// AppointmentRepository is the storage surface admission needs.
type AppointmentRepository interface {
	Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
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

// SettingsRepository provides the advance-payment percentage.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SalonSettings, error)
}

// AccountsClient verifies the booking customer exists and is active.
type AccountsClient interface {
	GetCustomer(ctx context.Context, customerID int64) (*accounts.Customer, error)
}

// TransactionManager runs the admission checks and the insert as one
// serializable unit.
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
