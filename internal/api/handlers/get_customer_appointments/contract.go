package get_customer_appointments

import (
	"context"

	"github.com/xsalon/scheduling-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListForCustomer(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
