package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{StatusPendingPayment, StatusConfirmed, true},
		{StatusPendingPayment, StatusCancelled, true},
		{StatusPendingPayment, StatusCheckedIn, false},
		{StatusPendingPayment, StatusCompleted, false},
		{StatusConfirmed, StatusCheckedIn, true},
		{StatusConfirmed, StatusInProgress, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusCompleted, false},
		{StatusCheckedIn, StatusInProgress, true},
		{StatusCheckedIn, StatusCancelled, true},
		{StatusCheckedIn, StatusNoShow, true},
		{StatusCheckedIn, StatusConfirmed, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, false},
		{StatusInProgress, StatusNoShow, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusPendingPayment, false},
		{StatusNoShow, StatusConfirmed, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			apt := &Appointment{Status: tt.from}

			assert.Equal(t, tt.allowed, apt.CanTransitionTo(tt.to))

			err := apt.TransitionTo(tt.to)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, apt.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidStatusTransition)
				assert.Equal(t, tt.from, apt.Status)
			}
		})
	}
}

func TestBlocksSlot(t *testing.T) {
	blocking := []AppointmentStatus{
		StatusPendingPayment, StatusConfirmed, StatusCheckedIn, StatusInProgress, StatusCompleted,
	}
	for _, status := range blocking {
		apt := &Appointment{Status: status}
		assert.True(t, apt.BlocksSlot(), "status %s should block", status)
	}

	for _, status := range []AppointmentStatus{StatusCancelled, StatusNoShow} {
		apt := &Appointment{Status: status}
		assert.False(t, apt.BlocksSlot(), "status %s should not block", status)
	}
}

func TestInQueueSet(t *testing.T) {
	inQueue := map[AppointmentStatus]bool{
		StatusPendingPayment: false,
		StatusConfirmed:      true,
		StatusCheckedIn:      true,
		StatusInProgress:     true,
		StatusCompleted:      false,
		StatusCancelled:      false,
		StatusNoShow:         false,
	}
	for status, want := range inQueue {
		apt := &Appointment{Status: status}
		assert.Equal(t, want, apt.InQueueSet(), "status %s", status)
	}
}

func TestMarkCheckedIn(t *testing.T) {
	now := time.Date(2025, 11, 3, 9, 40, 0, 0, time.UTC)
	apt := &Appointment{Status: StatusConfirmed}

	require.NoError(t, apt.MarkCheckedIn(now))
	assert.Equal(t, StatusCheckedIn, apt.Status)
	require.NotNil(t, apt.CheckedInAt)
	assert.Equal(t, now, *apt.CheckedInAt)
}

func TestMarkCompletedDerivesActualDuration(t *testing.T) {
	started := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	finished := started.Add(47 * time.Minute)

	apt := &Appointment{Status: StatusInProgress, StartedAt: &started}

	require.NoError(t, apt.MarkCompleted(finished))
	assert.Equal(t, StatusCompleted, apt.Status)
	require.NotNil(t, apt.ActualDurationMinutes)
	assert.Equal(t, 47, *apt.ActualDurationMinutes)
}

func TestMarkNoShowForfeitsAdvance(t *testing.T) {
	now := time.Date(2025, 11, 3, 11, 0, 0, 0, time.UTC)
	apt := &Appointment{
		Status: StatusConfirmed,
		Payment: PaymentPartial{
			AdvanceAmount: 250,
			TotalAmount:   500,
			Reference:     "apt-1-ref",
			PaidAt:        now.Add(-time.Hour),
		},
	}

	require.NoError(t, apt.MarkNoShow(now))
	assert.Equal(t, StatusNoShow, apt.Status)

	failed, ok := apt.Payment.(PaymentFailed)
	require.True(t, ok)
	assert.Equal(t, int64(250), failed.AdvanceAmount)
	assert.Equal(t, "apt-1-ref", failed.Reference)
}

func TestMarkCancelledMovesAdvanceToPendingRefund(t *testing.T) {
	now := time.Date(2025, 11, 3, 11, 0, 0, 0, time.UTC)
	position := 2
	apt := &Appointment{
		Status:        StatusConfirmed,
		QueuePosition: &position,
		Payment: PaymentPartial{
			AdvanceAmount: 250,
			TotalAmount:   500,
			Reference:     "apt-1-ref",
			PaidAt:        now.Add(-time.Hour),
		},
	}

	require.NoError(t, apt.MarkCancelled(now))
	assert.Equal(t, StatusCancelled, apt.Status)
	assert.Nil(t, apt.QueuePosition)

	refund, ok := apt.Payment.(PaymentPendingRefund)
	require.True(t, ok)
	assert.Equal(t, now, refund.RequestedAt)
}

func TestMarkCancelledLeavesUnpaidPaymentAlone(t *testing.T) {
	now := time.Now()
	apt := &Appointment{
		Status:  StatusPendingPayment,
		Payment: PaymentPending{AdvanceAmount: 250, TotalAmount: 500},
	}

	require.NoError(t, apt.MarkCancelled(now))
	_, ok := apt.Payment.(PaymentPending)
	assert.True(t, ok)
}

func TestRecomputeEstimatedEnd(t *testing.T) {
	apt := &Appointment{
		ScheduledTime:            "09:45",
		EstimatedDurationMinutes: 30,
	}

	require.NoError(t, apt.RecomputeEstimatedEnd())
	assert.Equal(t, "10:15", apt.EstimatedEndTime.String())
}

func TestInterval(t *testing.T) {
	apt := &Appointment{
		ScheduledTime:            "10:00",
		EstimatedDurationMinutes: 45,
	}

	start, end, err := apt.Interval()
	require.NoError(t, err)
	assert.Equal(t, 600, start)
	assert.Equal(t, 645, end)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 11, 3, 0, 5, 0, 0, time.UTC)
	b := time.Date(2025, 11, 3, 23, 55, 0, 0, time.UTC)
	c := time.Date(2025, 11, 4, 0, 5, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}

func TestDayOf(t *testing.T) {
	got := DayOf(time.Date(2025, 11, 3, 17, 42, 13, 999, time.UTC))
	assert.Equal(t, time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), got)
}
