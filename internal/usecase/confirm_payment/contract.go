package confirm_payment

import (
	"context"
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
	"github.com/xsalon/scheduling-service/internal/integrations/paymentprovider"
)

// AppointmentRepository is the storage surface payment confirmation needs.
type AppointmentRepository interface {
	GetByPaymentReference(ctx context.Context, reference string) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
}

// PaymentProviderClient verifies transaction outcomes with the gateway.
// Webhook payloads are never trusted on their own.
type PaymentProviderClient interface {
	VerifyTransaction(ctx context.Context, reference string) (*paymentprovider.VerifyResult, error)
}

// QueueAssigner appends a confirmed same-day appointment to the day queue.
type QueueAssigner interface {
	AssignPosition(ctx context.Context, apt *domain.Appointment) (int, error)
}

// TransactionManager runs the confirmation atomically.
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
