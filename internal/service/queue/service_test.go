package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsalon/scheduling-service/internal/domain"
	appointmentRepo "github.com/xsalon/scheduling-service/internal/infra/storage/appointment"
	"github.com/xsalon/scheduling-service/internal/service/queue/models"
	"github.com/xsalon/scheduling-service/pkg/types"
)

type fakeRepo struct {
	byID map[int64]*domain.Appointment
}

func newFakeRepo(appts ...*domain.Appointment) *fakeRepo {
	byID := make(map[int64]*domain.Appointment, len(appts))
	for _, apt := range appts {
		byID[apt.ID] = apt
	}
	return &fakeRepo{byID: byID}
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	apt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return apt, nil
}

func (f *fakeRepo) GetQueueForDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	entries := make([]*domain.Appointment, 0)
	for _, apt := range f.byID {
		if apt.InQueueSet() && domain.SameDay(apt.ScheduledDate, date) {
			entries = append(entries, apt)
		}
	}
	return entries, nil
}

func (f *fakeRepo) UpdateQueuePosition(_ context.Context, id int64, position *int) error {
	apt, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	apt.QueuePosition = position
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var day = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func confirmed(id int64, start types.TimeString, position *int) *domain.Appointment {
	return &domain.Appointment{
		ID:                       id,
		CustomerID:               id,
		ScheduledDate:            day,
		ScheduledTime:            start,
		EstimatedDurationMinutes: 30,
		Status:                   domain.StatusConfirmed,
		QueuePosition:            position,
	}
}

func newService(repo *fakeRepo) *Service {
	return NewService(repo, fakeTxManager{}, domain.DefaultSchedulingPolicy(), nopLogger{})
}

func TestAssignPositionAppendsToBack(t *testing.T) {
	repo := newFakeRepo(
		confirmed(1, "09:00", intPtr(1)),
		confirmed(2, "09:30", intPtr(2)),
		confirmed(3, "10:00", nil),
	)
	svc := newService(repo)

	pos, err := svc.AssignPosition(context.Background(), repo.byID[3])
	require.NoError(t, err)
	assert.Equal(t, 3, pos)
	assert.Equal(t, 3, *repo.byID[3].QueuePosition)
}

func TestAssignPositionFirstOfDay(t *testing.T) {
	repo := newFakeRepo(confirmed(1, "09:00", nil))
	svc := newService(repo)

	pos, err := svc.AssignPosition(context.Background(), repo.byID[1])
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
}

func TestAssignPositionIdempotent(t *testing.T) {
	repo := newFakeRepo(confirmed(1, "09:00", intPtr(1)), confirmed(2, "09:30", intPtr(2)))
	svc := newService(repo)

	pos, err := svc.AssignPosition(context.Background(), repo.byID[1])
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, 2, *repo.byID[2].QueuePosition)
}

func TestRecalculateDayClosesGap(t *testing.T) {
	// Position 1 has departed via completion; 2 and 3 remain.
	repo := newFakeRepo(
		&domain.Appointment{
			ID: 1, ScheduledDate: day, ScheduledTime: "09:00",
			EstimatedDurationMinutes: 30, Status: domain.StatusCompleted,
		},
		confirmed(2, "09:30", intPtr(2)),
		confirmed(3, "10:00", intPtr(3)),
	)
	svc := newService(repo)

	require.NoError(t, svc.RecalculateDay(context.Background(), day))

	assert.Equal(t, 1, *repo.byID[2].QueuePosition)
	assert.Equal(t, 2, *repo.byID[3].QueuePosition)
}

func TestRecalculateDayCheckedInFirst(t *testing.T) {
	earlier := time.Date(2025, 11, 3, 9, 5, 0, 0, time.UTC)
	later := time.Date(2025, 11, 3, 9, 20, 0, 0, time.UTC)

	walkIn := confirmed(1, "11:00", intPtr(1))
	walkIn.Status = domain.StatusCheckedIn
	walkIn.CheckedInAt = timePtr(later)

	early := confirmed(2, "12:00", intPtr(2))
	early.Status = domain.StatusCheckedIn
	early.CheckedInAt = timePtr(earlier)

	notArrived := confirmed(3, "09:30", intPtr(3))

	repo := newFakeRepo(walkIn, early, notArrived)
	svc := newService(repo)

	require.NoError(t, svc.RecalculateDay(context.Background(), day))

	// Checked-in entries come first ordered by arrival, the rest follow by
	// scheduled time regardless of how early their slot is.
	assert.Equal(t, 1, *early.QueuePosition)
	assert.Equal(t, 2, *walkIn.QueuePosition)
	assert.Equal(t, 3, *notArrived.QueuePosition)
}

func TestReorderOverride(t *testing.T) {
	repo := newFakeRepo(
		confirmed(1, "09:00", intPtr(1)),
		confirmed(2, "09:30", intPtr(2)),
		confirmed(3, "10:00", intPtr(3)),
	)
	svc := newService(repo)

	err := svc.Reorder(context.Background(), day, []models.PositionOverride{
		{AppointmentID: 3, Position: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, *repo.byID[3].QueuePosition)
	assert.Equal(t, 2, *repo.byID[1].QueuePosition)
	assert.Equal(t, 3, *repo.byID[2].QueuePosition)
}

func TestReorderHoldsInReadsUntilRecalculation(t *testing.T) {
	checkedIn := func(id int64, start types.TimeString, position int, arrived time.Time) *domain.Appointment {
		apt := confirmed(id, start, intPtr(position))
		apt.Status = domain.StatusCheckedIn
		apt.CheckedInAt = timePtr(arrived)
		return apt
	}

	repo := newFakeRepo(
		checkedIn(1, "09:00", 1, time.Date(2025, 11, 3, 8, 40, 0, 0, time.UTC)),
		checkedIn(2, "09:30", 2, time.Date(2025, 11, 3, 8, 50, 0, 0, time.UTC)),
		checkedIn(3, "10:00", 3, time.Date(2025, 11, 3, 8, 55, 0, 0, time.UTC)),
	)
	svc := newService(repo)

	err := svc.Reorder(context.Background(), day, []models.PositionOverride{
		{AppointmentID: 3, Position: 1},
	})
	require.NoError(t, err)

	// Listings follow the persisted positions, not the arrival order.
	resp, err := svc.QueueForDay(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 3)
	assert.Equal(t, int64(3), resp.Entries[0].AppointmentID)
	assert.Equal(t, int64(1), resp.Entries[1].AppointmentID)
	assert.Equal(t, int64(2), resp.Entries[2].AppointmentID)

	// Position and people-ahead agree for a bumped entry.
	pos, err := svc.PositionFor(context.Background(), 1, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 2, pos.Position)
	assert.Equal(t, 1, pos.PeopleAhead)

	// The next natural recalculation restores arrival order.
	require.NoError(t, svc.RecalculateDay(context.Background(), day))
	resp, err = svc.QueueForDay(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Entries[0].AppointmentID)
	assert.Equal(t, int64(2), resp.Entries[1].AppointmentID)
	assert.Equal(t, int64(3), resp.Entries[2].AppointmentID)
}

func TestReorderRejectsUnknownAppointment(t *testing.T) {
	repo := newFakeRepo(confirmed(1, "09:00", intPtr(1)))
	svc := newService(repo)

	err := svc.Reorder(context.Background(), day, []models.PositionOverride{
		{AppointmentID: 99, Position: 1},
	})
	assert.ErrorIs(t, err, ErrInvalidReorder)
}

func TestReorderRejectsDuplicateAndBadPosition(t *testing.T) {
	repo := newFakeRepo(confirmed(1, "09:00", intPtr(1)), confirmed(2, "09:30", intPtr(2)))
	svc := newService(repo)

	err := svc.Reorder(context.Background(), day, []models.PositionOverride{
		{AppointmentID: 1, Position: 1},
		{AppointmentID: 1, Position: 2},
	})
	assert.ErrorIs(t, err, ErrInvalidReorder)

	err = svc.Reorder(context.Background(), day, []models.PositionOverride{
		{AppointmentID: 2, Position: 0},
	})
	assert.ErrorIs(t, err, ErrInvalidReorder)
}

func TestQueueForDayWaitEstimates(t *testing.T) {
	inProgress := confirmed(1, "09:00", intPtr(1))
	inProgress.Status = domain.StatusInProgress
	inProgress.CheckedInAt = timePtr(time.Date(2025, 11, 3, 8, 55, 0, 0, time.UTC))
	inProgress.EstimatedDurationMinutes = 45

	arrived := confirmed(2, "09:30", intPtr(2))
	arrived.Status = domain.StatusCheckedIn
	arrived.CheckedInAt = timePtr(time.Date(2025, 11, 3, 9, 10, 0, 0, time.UTC))
	arrived.EstimatedDurationMinutes = 20

	waiting := confirmed(3, "10:00", intPtr(3))

	repo := newFakeRepo(inProgress, arrived, waiting)
	svc := newService(repo)

	resp, err := svc.QueueForDay(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 3)

	// The entry being served waits zero. The next waits for the 45 minutes
	// ahead of it, the third adds the 20 minutes of the checked-in entry.
	assert.Equal(t, 0, resp.Entries[0].EstimatedWaitMinutes)
	assert.Equal(t, 45, resp.Entries[1].EstimatedWaitMinutes)
	assert.Equal(t, 65, resp.Entries[2].EstimatedWaitMinutes)

	assert.Equal(t, 3, resp.Stats.Total)
	assert.Equal(t, 1, resp.Stats.Waiting)
	assert.Equal(t, 1, resp.Stats.CheckedIn)
	assert.Equal(t, 1, resp.Stats.InProgress)
}

func TestPositionForOwnershipAndMembership(t *testing.T) {
	queued := confirmed(1, "09:00", intPtr(1))
	pending := &domain.Appointment{
		ID: 2, CustomerID: 2, ScheduledDate: day, ScheduledTime: "10:00",
		EstimatedDurationMinutes: 30, Status: domain.StatusPendingPayment,
	}
	repo := newFakeRepo(queued, pending)
	svc := newService(repo)

	resp, err := svc.PositionFor(context.Background(), 1, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Position)
	assert.Equal(t, 0, resp.PeopleAhead)

	_, err = svc.PositionFor(context.Background(), 1, 99, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Staff may look up any appointment.
	_, err = svc.PositionFor(context.Background(), 1, 99, true)
	assert.NoError(t, err)

	_, err = svc.PositionFor(context.Background(), 2, 2, false)
	assert.ErrorIs(t, err, ErrNotInQueue)

	_, err = svc.PositionFor(context.Background(), 42, 1, false)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
