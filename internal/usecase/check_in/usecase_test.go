package check_in

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsalon/scheduling-service/internal/domain"
	appointmentRepo "github.com/xsalon/scheduling-service/internal/infra/storage/appointment"
)

type fakeRepo struct {
	byID map[int64]*domain.Appointment
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	apt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return apt, nil
}

func (f *fakeRepo) Update(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	return apt, nil
}

type fakeQueue struct {
	assigned []int64
}

func (f *fakeQueue) AssignPosition(_ context.Context, apt *domain.Appointment) (int, error) {
	f.assigned = append(f.assigned, apt.ID)
	position := len(f.assigned)
	apt.QueuePosition = &position
	return position, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var day = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

// Confirmed 10:00-10:30 appointment on the test day for customer 1.
func confirmedAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:                       1,
		CustomerID:               1,
		ScheduledDate:            day,
		ScheduledTime:            "10:00",
		EstimatedDurationMinutes: 30,
		EstimatedEndTime:         "10:30",
		Status:                   domain.StatusConfirmed,
	}
}

func newTestUseCase(apt *domain.Appointment, at time.Time) (*UseCase, *fakeQueue) {
	queue := &fakeQueue{}
	uc := NewUseCase(
		&fakeRepo{byID: map[int64]*domain.Appointment{apt.ID: apt}},
		queue,
		fakeTxManager{},
		domain.DefaultSchedulingPolicy(),
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: at}
	return uc, queue
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 11, 3, hour, minute, 0, 0, time.UTC)
}

func TestCheckInWithinWindow(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
	}{
		{"window opens 30 minutes early", at(9, 30)},
		{"exactly on time", at(10, 0)},
		{"late but before estimated end", at(10, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apt := confirmedAppointment()
			uc, queue := newTestUseCase(apt, tt.now)

			resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, CustomerID: 1})
			require.NoError(t, err)

			assert.Equal(t, string(domain.StatusCheckedIn), resp.Status)
			assert.Equal(t, 1, resp.QueuePosition)
			assert.Equal(t, tt.now, resp.CheckedInAt)
			assert.Equal(t, []int64{1}, queue.assigned)
		})
	}
}

func TestCheckInTooEarly(t *testing.T) {
	uc, _ := newTestUseCase(confirmedAppointment(), at(9, 29))

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, CustomerID: 1})
	assert.ErrorIs(t, err, ErrTooEarly)
}

func TestCheckInTooLate(t *testing.T) {
	uc, _ := newTestUseCase(confirmedAppointment(), at(10, 31))

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, CustomerID: 1})
	assert.ErrorIs(t, err, ErrTooLate)
}

func TestCheckInWrongDay(t *testing.T) {
	uc, _ := newTestUseCase(confirmedAppointment(), time.Date(2025, 11, 4, 10, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, CustomerID: 1})
	assert.ErrorIs(t, err, ErrWrongDay)
}

func TestCheckInRequiresConfirmed(t *testing.T) {
	apt := confirmedAppointment()
	apt.Status = domain.StatusPendingPayment
	uc, _ := newTestUseCase(apt, at(10, 0))

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, CustomerID: 1})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestCheckInOwnership(t *testing.T) {
	uc, _ := newTestUseCase(confirmedAppointment(), at(10, 0))

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, CustomerID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCheckInUnknownAppointment(t *testing.T) {
	uc, _ := newTestUseCase(confirmedAppointment(), at(10, 0))

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, CustomerID: 1})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
