package get_salon_info

import (
	"context"

	salonModels "github.com/xsalon/scheduling-service/internal/service/salonconfig/models"
)

type SalonConfigService interface {
	GetSalonInfo(ctx context.Context) (*salonModels.SalonInfoResponse, error)
	GetServices(ctx context.Context, activeOnly bool) ([]salonModels.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
