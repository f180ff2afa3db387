package update_working_hours

import (
	"context"

	salonModels "github.com/xsalon/scheduling-service/internal/service/salonconfig/models"
)

type SalonConfigService interface {
	GetWorkingHours(ctx context.Context) ([]salonModels.WorkingHourResponse, error)
	UpdateWorkingHours(ctx context.Context, req *salonModels.UpdateWorkingHourRequest) (*salonModels.WorkingHourResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
