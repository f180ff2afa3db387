package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/xsalon/scheduling-service/internal/domain"
	appointmentRepo "github.com/xsalon/scheduling-service/internal/infra/storage/appointment"
	"github.com/xsalon/scheduling-service/internal/service/appointments/models"
	"github.com/xsalon/scheduling-service/pkg/ptr"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service is the read side for appointments: single lookups with ownership
// checks and paginated customer history.
type Service struct {
	appointments AppointmentRepository
	logger       Logger
}

func NewService(appointments AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointments: appointments,
		logger:       logger,
	}
}

// GetByID fetches one appointment. Customers may only read their own;
// staff pass isStaff=true and see everything.
func (s *Service) GetByID(ctx context.Context, id, requesterID int64, isStaff bool) (*models.AppointmentResponse, error) {
	apt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !isStaff && apt.CustomerID != requesterID {
		s.logger.Warn("GetByID: access denied for customer=%d to appointment id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(apt), nil
}

// ListForCustomer returns one page of a customer's appointment history,
// newest first, optionally filtered by status.
func (s *Service) ListForCustomer(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	var status *domain.AppointmentStatus
	if req.Status != nil {
		if !domain.ValidAppointmentStatus(*req.Status) {
			s.logger.Warn("ListForCustomer: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		status = ptr.Ptr(domain.AppointmentStatus(*req.Status))
	}

	page := req.Page
	if page == 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	apts, err := s.appointments.GetByCustomer(ctx, req.CustomerID, status, pageSize, (page-1)*pageSize)
	if err != nil {
		s.logger.Error("ListForCustomer: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: ListForCustomer - repository error: %v", ErrInternal, err)
	}

	total, err := s.appointments.CountByCustomer(ctx, req.CustomerID, status)
	if err != nil {
		s.logger.Error("ListForCustomer: count error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: ListForCustomer - count error: %v", ErrInternal, err)
	}

	return &models.AppointmentListResponse{
		Appointments: models.FromDomainAppointmentList(apts),
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}
