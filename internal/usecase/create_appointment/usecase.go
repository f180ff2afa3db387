package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/xsalon/scheduling-service/internal/domain"
	calendarRepo "github.com/xsalon/scheduling-service/internal/infra/storage/calendar"
	servicecatalogRepo "github.com/xsalon/scheduling-service/internal/infra/storage/servicecatalog"
	accountsClient "github.com/xsalon/scheduling-service/internal/integrations/accounts"
)

// UseCase admits new appointments. All booking-state checks and the insert
// run inside one serializable transaction so concurrent requests for the
// same hour cannot both pass the capacity check.
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendarRepo    CalendarRepository
	catalogRepo     ServiceCatalogRepository
	settingsRepo    SettingsRepository
	accounts        AccountsClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	policy          domain.SchedulingPolicy
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	calendarRepo CalendarRepository,
	catalogRepo ServiceCatalogRepository,
	settingsRepo SettingsRepository,
	accounts AccountsClient,
	txManager TransactionManager,
	policy domain.SchedulingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendarRepo:    calendarRepo,
		catalogRepo:     catalogRepo,
		settingsRepo:    settingsRepo,
		accounts:        accounts,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		policy:          policy,
		logger:          logger,
	}
}

// Execute validates the request (fail fast, first violation wins) and
// persists the appointment in PENDING_PAYMENT with the deposit computed from
// current settings.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	customer, err := uc.accounts.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, accountsClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateAppointment: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}
	if !customer.IsActive {
		uc.logger.Warn("CreateAppointment: customer id=%d is inactive", req.CustomerID)
		return nil, ErrCustomerInactive
	}

	now := uc.timeProvider.Now()

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		service, err := uc.catalogRepo.GetByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, servicecatalogRepo.ErrServiceNotFound) {
				return ErrServiceUnavailable
			}
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !service.Bookable() {
			return ErrServiceUnavailable
		}

		if err := validateDate(req.Date, now, uc.policy.BookingHorizonDays); err != nil {
			return err
		}

		rule, err := uc.calendarRepo.GetByWeekday(txCtx, int(req.Date.Weekday()))
		if err != nil {
			if errors.Is(err, calendarRepo.ErrRuleNotFound) {
				return ErrOutsideBusinessHours
			}
			return fmt.Errorf("%w: failed to get calendar rule: %v", ErrInternal, err)
		}
		if err := validateBusinessHours(rule, req.StartTime, service.DurationMinutes); err != nil {
			return err
		}

		// Day snapshot under FOR UPDATE: overlap and capacity checks see the
		// same state the insert commits against.
		appointments, err := uc.appointmentRepo.GetByDate(txCtx, req.Date, true)
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		if err := checkCustomerOverlap(req.CustomerID, req.StartTime, service.DurationMinutes, appointments, 0); err != nil {
			return err
		}

		if err := checkHourlyCapacity(req.StartTime, appointments, uc.policy.HourlyCapacity, 0); err != nil {
			return err
		}

		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to get salon settings: %v", ErrInternal, err)
		}

		endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}

		apt := &domain.Appointment{
			CustomerID:               req.CustomerID,
			ServiceID:                req.ServiceID,
			ScheduledDate:            domain.DayOf(req.Date),
			ScheduledTime:            req.StartTime,
			EstimatedDurationMinutes: service.DurationMinutes,
			EstimatedEndTime:         endTime,
			Status:                   domain.StatusPendingPayment,
			Payment: domain.PaymentPending{
				AdvanceAmount: settings.AdvanceAmount(service.Price),
				TotalAmount:   service.Price,
			},
			Notes: req.Notes,
		}

		result, err = uc.appointmentRepo.Create(txCtx, apt)
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Warn("CreateAppointment: rejected for customer=%d: %v", req.CustomerID, err)
		return nil, err
	}

	advance, total := result.Payment.Amounts()
	uc.logger.Info("CreateAppointment: created appointment id=%d for customer=%d, advance=%d",
		result.ID, result.CustomerID, advance)

	return &Response{
		ID:                       result.ID,
		CustomerID:               result.CustomerID,
		ServiceID:                result.ServiceID,
		ScheduledDate:            result.ScheduledDate,
		ScheduledTime:            result.ScheduledTime,
		EstimatedDurationMinutes: result.EstimatedDurationMinutes,
		EstimatedEndTime:         result.EstimatedEndTime,
		Status:                   string(result.Status),
		PaymentStatus:            string(result.Payment.Status()),
		AdvanceAmount:            advance,
		TotalAmount:              total,
		Notes:                    result.Notes,
		CreatedAt:                result.CreatedAt,
	}, nil
}
