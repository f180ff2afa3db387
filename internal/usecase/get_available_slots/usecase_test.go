package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsalon/scheduling-service/internal/domain"
	calendarRepo "github.com/xsalon/scheduling-service/internal/infra/storage/calendar"
	servicecatalogRepo "github.com/xsalon/scheduling-service/internal/infra/storage/servicecatalog"
	"github.com/xsalon/scheduling-service/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByDate(_ context.Context, _ time.Time, _ bool) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeCalendarRepo struct {
	rules map[int]*domain.CalendarRule
}

func (f *fakeCalendarRepo) GetByWeekday(_ context.Context, weekday int) (*domain.CalendarRule, error) {
	rule, ok := f.rules[weekday]
	if !ok {
		return nil, calendarRepo.ErrRuleNotFound
	}
	return rule, nil
}

type fakeCatalogRepo struct {
	services map[int64]*domain.ServiceDefinition
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, serviceID int64) (*domain.ServiceDefinition, error) {
	service, ok := f.services[serviceID]
	if !ok {
		return nil, servicecatalogRepo.ErrServiceNotFound
	}
	return service, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Monday 2025-11-03.
var testDate = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

func newTestUseCase(appts []*domain.Appointment) *UseCase {
	return NewUseCase(
		&fakeAppointmentRepo{appointments: appts},
		&fakeCalendarRepo{rules: map[int]*domain.CalendarRule{
			1: {Weekday: 1, OpeningTime: "08:00", ClosingTime: "20:00"},
		}},
		&fakeCatalogRepo{services: map[int64]*domain.ServiceDefinition{
			10: {ID: 10, DurationMinutes: 30, Price: 500, IsActive: true},
			11: {ID: 11, DurationMinutes: 30, Price: 500, IsActive: false},
		}},
		domain.DefaultSchedulingPolicy(),
		nopLogger{},
	)
}

func slotByStart(t *testing.T, slots []Slot, start types.TimeString) Slot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime == start {
			return s
		}
	}
	t.Fatalf("no slot starting at %s", start)
	return Slot{}
}

func TestEmptyDayAllSlotsAvailable(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	// 08:00 through 19:30 at 15-minute steps for a 30-minute service.
	require.Len(t, resp.Slots, 47)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("08:30"), resp.Slots[0].EndTime)
	assert.Equal(t, types.TimeString("19:30"), resp.Slots[len(resp.Slots)-1].StartTime)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s should be available", slot.StartTime)
	}
}

func TestLateClosingSlotsNeverOverrunMidnight(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{rules: map[int]*domain.CalendarRule{
			1: {Weekday: 1, OpeningTime: "22:00", ClosingTime: "23:45"},
		}},
		&fakeCatalogRepo{services: map[int64]*domain.ServiceDefinition{
			10: {ID: 10, DurationMinutes: 30, Price: 500, IsActive: true},
		}},
		domain.DefaultSchedulingPolicy(),
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	// 22:00 through 23:15; 23:30 would end at midnight, past close.
	require.Len(t, resp.Slots, 6)
	assert.Equal(t, types.TimeString("23:15"), resp.Slots[len(resp.Slots)-1].StartTime)
	assert.Equal(t, types.TimeString("23:45"), resp.Slots[len(resp.Slots)-1].EndTime)
}

func TestOverlapMarksSlotsUnavailable(t *testing.T) {
	uc := newTestUseCase([]*domain.Appointment{
		{ScheduledTime: "10:00", EstimatedDurationMinutes: 30, Status: domain.StatusConfirmed},
	})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	// A 30-minute candidate overlaps [10:00, 10:30) when it starts in
	// (09:30, 10:30) exclusive of both ends.
	assert.True(t, slotByStart(t, resp.Slots, "09:30").Available)
	assert.False(t, slotByStart(t, resp.Slots, "09:45").Available)
	assert.False(t, slotByStart(t, resp.Slots, "10:00").Available)
	assert.False(t, slotByStart(t, resp.Slots, "10:15").Available)
	assert.True(t, slotByStart(t, resp.Slots, "10:30").Available)
}

func TestHourlyCapReachedBlocksWholeHour(t *testing.T) {
	// Five short appointments all starting inside hour 9 reach the cap.
	appts := make([]*domain.Appointment, 0, 5)
	for _, start := range []types.TimeString{"09:00", "09:10", "09:20", "09:30", "09:40"} {
		appts = append(appts, &domain.Appointment{
			ScheduledTime:            start,
			EstimatedDurationMinutes: 5,
			Status:                   domain.StatusConfirmed,
		})
	}
	uc := newTestUseCase(appts)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	// Every candidate starting in hour 9 is capped even where no interval
	// overlaps, candidates in other hours are untouched.
	assert.False(t, slotByStart(t, resp.Slots, "09:45").Available)
	assert.True(t, slotByStart(t, resp.Slots, "10:00").Available)
	assert.True(t, slotByStart(t, resp.Slots, "08:00").Available)
}

func TestClosedDayReturnsNoSlots(t *testing.T) {
	uc := newTestUseCase(nil)

	// Sunday has no rule at all.
	sunday := time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestInactiveServiceUnavailable(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 11, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestUnknownServiceUnavailable(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 99, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestQueryIsIdempotent(t *testing.T) {
	uc := newTestUseCase([]*domain.Appointment{
		{ScheduledTime: "12:00", EstimatedDurationMinutes: 30, Status: domain.StatusConfirmed},
	})

	first, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}
