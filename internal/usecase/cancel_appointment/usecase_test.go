package cancel_appointment

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
	recalculated []time.Time
}

func (f *fakeQueue) RecalculateDay(_ context.Context, date time.Time) error {
	f.recalculated = append(f.recalculated, date)
	return nil
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

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

// Appointment at 10:00 on the given day, paid and confirmed.
func paidAppointment(date time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:                       1,
		CustomerID:               1,
		ScheduledDate:            domain.DayOf(date),
		ScheduledTime:            "10:00",
		EstimatedDurationMinutes: 30,
		Status:                   domain.StatusConfirmed,
		Payment: domain.PaymentPartial{
			AdvanceAmount: 250,
			TotalAmount:   500,
			Reference:     "ref-1",
			PaidAt:        date.Add(-48 * time.Hour),
		},
	}
}

func newTestUseCase(apt *domain.Appointment, now time.Time) (*UseCase, *fakeQueue) {
	queue := &fakeQueue{}
	uc := NewUseCase(
		&fakeRepo{byID: map[int64]*domain.Appointment{apt.ID: apt}},
		queue,
		fakeTxManager{},
		domain.DefaultSchedulingPolicy(),
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: now}
	return uc, queue
}

func TestCustomerCancelWithNotice(t *testing.T) {
	day := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)
	apt := paidAppointment(day)
	// 34 hours before the 10:00 start.
	uc, queue := newTestUseCase(apt, time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		RequesterID:   1,
		Reason:        strPtr("travel"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, string(domain.PaymentStatusPendingRefund), resp.PaymentStatus)
	require.NotNil(t, apt.Notes)
	assert.Equal(t, "travel", *apt.Notes)
	assert.Empty(t, queue.recalculated) // was not queued
}

func TestCustomerCancelInsideNoticeRejected(t *testing.T) {
	day := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)
	apt := paidAppointment(day)
	// Only 12 hours before the start.
	uc, _ := newTestUseCase(apt, time.Date(2025, 11, 4, 22, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, RequesterID: 1})
	assert.ErrorIs(t, err, ErrCancelNoticePassed)
	assert.Equal(t, domain.StatusConfirmed, apt.Status)
}

func TestStaffCancelBypassesNotice(t *testing.T) {
	day := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)
	apt := paidAppointment(day)
	uc, _ := newTestUseCase(apt, time.Date(2025, 11, 5, 9, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		RequesterID:   500,
		IsStaff:       true,
		Reason:        strPtr("stylist out sick"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, apt.AdminNotes)
	assert.Equal(t, "stylist out sick", *apt.AdminNotes)
}

func TestUnpaidCancellableAnyTime(t *testing.T) {
	day := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)
	apt := paidAppointment(day)
	apt.Status = domain.StatusPendingPayment
	apt.Payment = domain.PaymentPending{AdvanceAmount: 250, TotalAmount: 500}
	// One hour before the start.
	uc, _ := newTestUseCase(apt, time.Date(2025, 11, 5, 9, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, RequesterID: 1})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, string(domain.PaymentStatusPending), resp.PaymentStatus)
}

func TestCancelQueuedTriggersRecalculation(t *testing.T) {
	day := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)
	apt := paidAppointment(day)
	apt.QueuePosition = intPtr(2)
	uc, queue := newTestUseCase(apt, time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, RequesterID: 1})
	require.NoError(t, err)

	require.Len(t, queue.recalculated, 1)
	assert.True(t, domain.SameDay(day, queue.recalculated[0]))
	assert.Nil(t, apt.QueuePosition)
}

func TestCancelTerminalStateRejected(t *testing.T) {
	day := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)
	apt := paidAppointment(day)
	apt.Status = domain.StatusCompleted
	uc, _ := newTestUseCase(apt, time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, RequesterID: 1, IsStaff: true})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestCancelOwnership(t *testing.T) {
	day := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(paidAppointment(day), time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, RequesterID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
