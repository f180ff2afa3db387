package salonconfig

import (
	"context"

	"github.com/xsalon/scheduling-service/internal/domain"
)

// CalendarRepository stores the weekly opening-hour rules.
type CalendarRepository interface {
	GetByWeekday(ctx context.Context, weekday int) (*domain.CalendarRule, error)
	List(ctx context.Context) ([]*domain.CalendarRule, error)
	Upsert(ctx context.Context, rule *domain.CalendarRule) (*domain.CalendarRule, error)
}

// ServiceCatalogRepository reads the salon service catalog.
type ServiceCatalogRepository interface {
	GetByID(ctx context.Context, serviceID int64) (*domain.ServiceDefinition, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.ServiceDefinition, error)
}

// SettingsRepository reads the single-row salon settings.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SalonSettings, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
