package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/xsalon/scheduling-service/internal/domain"
	calendarRepo "github.com/xsalon/scheduling-service/internal/infra/storage/calendar"
	servicecatalogRepo "github.com/xsalon/scheduling-service/internal/infra/storage/servicecatalog"
)

// UseCase computes the bookable start times for a service on a date.
// The result is deterministic for a given booking state: same inputs, same
// slot list.
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendarRepo    CalendarRepository
	catalogRepo     ServiceCatalogRepository
	policy          domain.SchedulingPolicy
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	calendarRepo CalendarRepository,
	catalogRepo ServiceCatalogRepository,
	policy domain.SchedulingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendarRepo:    calendarRepo,
		catalogRepo:     catalogRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute returns every candidate slot for the date flagged available or not.
// Closed days and days where the duration cannot fit return an empty list,
// not an error.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicecatalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceUnavailable
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.Bookable() {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceUnavailable
	}

	response := &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           []Slot{},
	}

	rule, err := uc.calendarRepo.GetByWeekday(ctx, int(req.Date.Weekday()))
	if err != nil {
		if errors.Is(err, calendarRepo.ErrRuleNotFound) {
			// No rule for the weekday means the salon is closed that day.
			uc.logger.Info("GetAvailableSlots: no calendar rule for weekday=%d", int(req.Date.Weekday()))
			return response, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get calendar rule: %v", err)
		return nil, fmt.Errorf("%w: failed to get calendar rule: %v", ErrInternal, err)
	}

	candidates, err := generateCandidates(rule, service.DurationMinutes, uc.policy.SlotGranularityMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate candidates: %v", err)
		return nil, fmt.Errorf("%w: failed to generate candidates: %v", ErrInternal, err)
	}

	if len(candidates) == 0 {
		return response, nil
	}

	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date, true)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	slots, err := flagAvailability(candidates, service.DurationMinutes, appointments, uc.policy.HourlyCapacity)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to flag availability: %v", err)
		return nil, fmt.Errorf("%w: failed to flag availability: %v", ErrInternal, err)
	}

	response.Slots = slots
	uc.logger.Info("GetAvailableSlots: %d candidates for service=%d on %s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return response, nil
}
