package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsalon/scheduling-service/internal/domain"
	appointmentRepo "github.com/xsalon/scheduling-service/internal/infra/storage/appointment"
	"github.com/xsalon/scheduling-service/internal/service/appointments/models"
	"github.com/xsalon/scheduling-service/pkg/ptr"
)

type fakeRepo struct {
	byID       map[int64]*domain.Appointment
	lastStatus *domain.AppointmentStatus
	lastLimit  uint64
	lastOffset uint64
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	apt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return apt, nil
}

func (f *fakeRepo) GetByCustomer(_ context.Context, customerID int64, status *domain.AppointmentStatus, limit, offset uint64) ([]*domain.Appointment, error) {
	f.lastStatus = status
	f.lastLimit = limit
	f.lastOffset = offset

	out := make([]*domain.Appointment, 0)
	for _, apt := range f.byID {
		if apt.CustomerID != customerID {
			continue
		}
		if status != nil && apt.Status != *status {
			continue
		}
		out = append(out, apt)
	}
	return out, nil
}

func (f *fakeRepo) CountByCustomer(_ context.Context, customerID int64, status *domain.AppointmentStatus) (int64, error) {
	var count int64
	for _, apt := range f.byID {
		if apt.CustomerID != customerID {
			continue
		}
		if status != nil && apt.Status != *status {
			continue
		}
		count++
	}
	return count, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var day = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

func appointment(id, customerID int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:                       id,
		CustomerID:               customerID,
		ScheduledDate:            day,
		ScheduledTime:            "10:00",
		EstimatedDurationMinutes: 30,
		Status:                   status,
		Payment:                  domain.PaymentPending{AdvanceAmount: 250, TotalAmount: 500},
	}
}

func TestGetByIDOwnership(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{
		1: appointment(1, 1, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 1, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	_, err = svc.GetByID(context.Background(), 1, 2, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Staff may read any appointment.
	_, err = svc.GetByID(context.Background(), 1, 2, true)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 42, 1, false)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListForCustomerStatusFilter(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{
		1: appointment(1, 1, domain.StatusConfirmed),
		2: appointment(2, 1, domain.StatusCancelled),
		3: appointment(3, 2, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListForCustomer(context.Background(), &models.ListAppointmentsRequest{
		CustomerID: 1,
		Status:     ptr.Ptr("CONFIRMED"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(1), resp.Appointments[0].ID)
	require.NotNil(t, repo.lastStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastStatus)

	_, err = svc.ListForCustomer(context.Background(), &models.ListAppointmentsRequest{
		CustomerID: 1,
		Status:     ptr.Ptr("bogus"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListForCustomerPagingDefaults(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{
		1: appointment(1, 1, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListForCustomer(context.Background(), &models.ListAppointmentsRequest{CustomerID: 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp.Page)
	assert.Equal(t, uint64(defaultPageSize), resp.PageSize)
	assert.EqualValues(t, 1, resp.Total)
	assert.Equal(t, uint64(defaultPageSize), repo.lastLimit)
	assert.Equal(t, uint64(0), repo.lastOffset)

	resp, err = svc.ListForCustomer(context.Background(), &models.ListAppointmentsRequest{
		CustomerID: 1,
		Page:       3,
		PageSize:   500,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(maxPageSize), resp.PageSize)
	assert.Equal(t, uint64(2*maxPageSize), repo.lastOffset)
}
