package confirm_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsalon/scheduling-service/internal/domain"
	appointmentRepo "github.com/xsalon/scheduling-service/internal/infra/storage/appointment"
	"github.com/xsalon/scheduling-service/internal/integrations/paymentprovider"
)

type fakeRepo struct {
	byRef map[string]*domain.Appointment
}

func (f *fakeRepo) GetByPaymentReference(_ context.Context, reference string) (*domain.Appointment, error) {
	apt, ok := f.byRef[reference]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return apt, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	for _, apt := range f.byRef {
		if apt.ID == id {
			return apt, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeRepo) Update(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	return apt, nil
}

type fakeProvider struct {
	results map[string]*paymentprovider.VerifyResult
}

func (f *fakeProvider) VerifyTransaction(_ context.Context, reference string) (*paymentprovider.VerifyResult, error) {
	result, ok := f.results[reference]
	if !ok {
		return nil, paymentprovider.ErrTransactionNotFound
	}
	return result, nil
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

var testNow = time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)

func pendingAppointment(ref string, date time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:                       1,
		CustomerID:               1,
		ScheduledDate:            date,
		ScheduledTime:            "10:00",
		EstimatedDurationMinutes: 30,
		Status:                   domain.StatusPendingPayment,
		Payment: domain.PaymentPending{
			AdvanceAmount: 250,
			TotalAmount:   500,
			Reference:     ref,
		},
	}
}

func newTestUseCase(repo *fakeRepo, provider *fakeProvider, queue *fakeQueue) *UseCase {
	uc := NewUseCase(repo, provider, queue, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestSuccessfulPaymentConfirmsAndQueuesSameDay(t *testing.T) {
	apt := pendingAppointment("ref-1", domain.DayOf(testNow))
	repo := &fakeRepo{byRef: map[string]*domain.Appointment{"ref-1": apt}}
	provider := &fakeProvider{results: map[string]*paymentprovider.VerifyResult{
		"ref-1": {Succeeded: true},
	}}
	queue := &fakeQueue{}
	uc := newTestUseCase(repo, provider, queue)

	resp, err := uc.Execute(context.Background(), &Request{Reference: "ref-1"})
	require.NoError(t, err)

	assert.True(t, resp.Succeeded)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.PaymentStatusPartial), resp.PaymentStatus)
	require.NotNil(t, resp.QueuePosition)
	assert.Equal(t, 1, *resp.QueuePosition)
	assert.Equal(t, []int64{1}, queue.assigned)

	partial, ok := apt.Payment.(domain.PaymentPartial)
	require.True(t, ok)
	assert.Equal(t, testNow, partial.PaidAt)
}

func TestSuccessfulPaymentFutureDayNotQueued(t *testing.T) {
	apt := pendingAppointment("ref-1", domain.DayOf(testNow).AddDate(0, 0, 3))
	repo := &fakeRepo{byRef: map[string]*domain.Appointment{"ref-1": apt}}
	provider := &fakeProvider{results: map[string]*paymentprovider.VerifyResult{
		"ref-1": {Succeeded: true},
	}}
	queue := &fakeQueue{}
	uc := newTestUseCase(repo, provider, queue)

	resp, err := uc.Execute(context.Background(), &Request{Reference: "ref-1"})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Nil(t, resp.QueuePosition)
	assert.Empty(t, queue.assigned)
}

func TestFailedPaymentKeepsStatus(t *testing.T) {
	apt := pendingAppointment("ref-1", domain.DayOf(testNow))
	repo := &fakeRepo{byRef: map[string]*domain.Appointment{"ref-1": apt}}
	provider := &fakeProvider{results: map[string]*paymentprovider.VerifyResult{
		"ref-1": {Succeeded: false},
	}}
	queue := &fakeQueue{}
	uc := newTestUseCase(repo, provider, queue)

	resp, err := uc.Execute(context.Background(), &Request{Reference: "ref-1"})
	require.NoError(t, err)

	assert.False(t, resp.Succeeded)
	assert.Equal(t, string(domain.StatusPendingPayment), resp.Status)
	assert.Equal(t, string(domain.PaymentStatusFailed), resp.PaymentStatus)
	assert.Empty(t, queue.assigned)
}

func TestReplayedDeliveryIsIdempotent(t *testing.T) {
	apt := pendingAppointment("ref-1", domain.DayOf(testNow))
	repo := &fakeRepo{byRef: map[string]*domain.Appointment{"ref-1": apt}}
	provider := &fakeProvider{results: map[string]*paymentprovider.VerifyResult{
		"ref-1": {Succeeded: true},
	}}
	queue := &fakeQueue{}
	uc := newTestUseCase(repo, provider, queue)

	first, err := uc.Execute(context.Background(), &Request{Reference: "ref-1"})
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), &Request{Reference: "ref-1"})
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, *first.QueuePosition, *second.QueuePosition)
	// No second queue assignment on replay.
	assert.Equal(t, []int64{1}, queue.assigned)
}

func TestUnknownGatewayTransaction(t *testing.T) {
	uc := newTestUseCase(
		&fakeRepo{byRef: map[string]*domain.Appointment{}},
		&fakeProvider{results: map[string]*paymentprovider.VerifyResult{}},
		&fakeQueue{},
	)

	_, err := uc.Execute(context.Background(), &Request{Reference: "ref-missing"})
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestUnknownReference(t *testing.T) {
	provider := &fakeProvider{results: map[string]*paymentprovider.VerifyResult{
		"ref-1": {Succeeded: true},
	}}
	uc := newTestUseCase(&fakeRepo{byRef: map[string]*domain.Appointment{}}, provider, &fakeQueue{})

	_, err := uc.Execute(context.Background(), &Request{Reference: "ref-1"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
