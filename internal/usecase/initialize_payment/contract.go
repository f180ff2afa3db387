package initialize_payment

import (
	"context"

	"github.com/xsalon/scheduling-service/internal/domain"
	"github.com/xsalon/scheduling-service/internal/integrations/accounts"
	"github.com/xsalon/scheduling-service/internal/integrations/paymentprovider"
)

// AppointmentRepository is the storage surface payment initialization needs.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
}

// PaymentProviderClient starts hosted checkout sessions.
type PaymentProviderClient interface {
	InitializeTransaction(ctx context.Context, request paymentprovider.InitializeRequest) (*paymentprovider.InitializeResult, error)
}

// AccountsClient supplies the customer profile the gateway requires.
type AccountsClient interface {
	GetCustomer(ctx context.Context, customerID int64) (*accounts.Customer, error)
}

// TransactionManager runs the reference assignment atomically.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
