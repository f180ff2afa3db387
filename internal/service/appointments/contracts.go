package appointments

import (
	"context"

	"github.com/xsalon/scheduling-service/internal/domain"
)

// AppointmentRepository is the storage surface the read service needs.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByCustomer(ctx context.Context, customerID int64, status *domain.AppointmentStatus, limit, offset uint64) ([]*domain.Appointment, error)
	CountByCustomer(ctx context.Context, customerID int64, status *domain.AppointmentStatus) (int64, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
