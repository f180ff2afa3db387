package get_appointment

import (
	"context"

	"github.com/xsalon/scheduling-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetByID(ctx context.Context, id, requesterID int64, isStaff bool) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
