package salonconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/xsalon/scheduling-service/internal/domain"
	servicecatalogRepo "github.com/xsalon/scheduling-service/internal/infra/storage/servicecatalog"
	settingsRepo "github.com/xsalon/scheduling-service/internal/infra/storage/settings"
	"github.com/xsalon/scheduling-service/internal/service/salonconfig/models"
	"github.com/xsalon/scheduling-service/pkg/types"
)

// Service exposes the salon profile: working hours, service catalog and
// payment settings.
type Service struct {
	calendar CalendarRepository
	catalog  ServiceCatalogRepository
	settings SettingsRepository
	logger   Logger
}

func NewService(
	calendar CalendarRepository,
	catalog ServiceCatalogRepository,
	settings SettingsRepository,
	logger Logger,
) *Service {
	return &Service{
		calendar: calendar,
		catalog:  catalog,
		settings: settings,
		logger:   logger,
	}
}

// GetWorkingHours returns the weekly opening rules ordered Sunday first.
func (s *Service) GetWorkingHours(ctx context.Context) ([]models.WorkingHourResponse, error) {
	rules, err := s.calendar.List(ctx)
	if err != nil {
		s.logger.Error("GetWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}

	hours := make([]models.WorkingHourResponse, 0, len(rules))
	for _, rule := range rules {
		hours = append(hours, models.FromDomainRule(rule))
	}
	return hours, nil
}

// UpdateWorkingHours replaces one weekday's rule. Open days need a valid
// opening window; closed days ignore the times.
func (s *Service) UpdateWorkingHours(ctx context.Context, req *models.UpdateWorkingHourRequest) (*models.WorkingHourResponse, error) {
	if req.Weekday < 0 || req.Weekday > 6 {
		return nil, fmt.Errorf("%w: weekday must be 0..6", ErrInvalidInput)
	}

	rule := &domain.CalendarRule{
		Weekday:  req.Weekday,
		IsClosed: req.IsClosed,
	}

	if !req.IsClosed {
		opening, err := types.NewTimeStringFromString(req.OpeningTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid opening time: %v", ErrInvalidInput, err)
		}
		closing, err := types.NewTimeStringFromString(req.ClosingTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid closing time: %v", ErrInvalidInput, err)
		}
		if !opening.IsBefore(closing) {
			return nil, fmt.Errorf("%w: opening time must be before closing time", ErrInvalidInput)
		}
		rule.OpeningTime = opening
		rule.ClosingTime = closing
	}

	saved, err := s.calendar.Upsert(ctx, rule)
	if err != nil {
		s.logger.Error("UpdateWorkingHours: upsert error for weekday=%d: %v", req.Weekday, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - upsert error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWorkingHours: weekday=%d closed=%t", saved.Weekday, saved.IsClosed)
	resp := models.FromDomainRule(saved)
	return &resp, nil
}

// GetService returns one catalog entry.
func (s *Service) GetService(ctx context.Context, serviceID int64) (*models.ServiceResponse, error) {
	svc, err := s.catalog.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, servicecatalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainService(svc)
	return &resp, nil
}

// GetServices lists the catalog, active entries only by default.
func (s *Service) GetServices(ctx context.Context, activeOnly bool) ([]models.ServiceResponse, error) {
	services, err := s.catalog.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("GetServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetServices - repository error: %v", ErrInternal, err)
	}

	result := make([]models.ServiceResponse, 0, len(services))
	for _, svc := range services {
		result = append(result, models.FromDomainService(svc))
	}
	return result, nil
}

// GetSalonInfo bundles settings, working hours and the active catalog.
func (s *Service) GetSalonInfo(ctx context.Context) (*models.SalonInfoResponse, error) {
	salonSettings, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("GetSalonInfo: settings error: %v", err)
		return nil, fmt.Errorf("%w: GetSalonInfo - settings error: %v", ErrInternal, err)
	}

	hours, err := s.GetWorkingHours(ctx)
	if err != nil {
		return nil, err
	}

	services, err := s.GetServices(ctx, true)
	if err != nil {
		return nil, err
	}

	return &models.SalonInfoResponse{
		Settings:     models.FromDomainSettings(salonSettings),
		WorkingHours: hours,
		Services:     services,
	}, nil
}
