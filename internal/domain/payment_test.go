package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceAmountFor(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		percentage int
		want       int64
	}{
		{"even split", 500, 50, 250},
		{"rounds up", 333, 50, 167},
		{"rounds up small remainder", 101, 50, 51},
		{"full amount", 500, 100, 500},
		{"one percent of one", 1, 1, 1},
		{"zero total", 0, 50, 0},
		{"zero percentage", 500, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdvanceAmountFor(tt.total, tt.percentage))
		})
	}
}

func TestPaymentStateStatuses(t *testing.T) {
	tests := []struct {
		state PaymentState
		want  PaymentStatus
	}{
		{PaymentPending{}, PaymentStatusPending},
		{PaymentPartial{}, PaymentStatusPartial},
		{PaymentCompleted{}, PaymentStatusCompleted},
		{PaymentFailed{}, PaymentStatusFailed},
		{PaymentPendingRefund{}, PaymentStatusPendingRefund},
		{PaymentRefunded{}, PaymentStatusRefunded},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.Status())
	}
}

func TestPaymentReference(t *testing.T) {
	assert.Equal(t, "ref-1", PaymentReference(PaymentPending{Reference: "ref-1"}))
	assert.Equal(t, "ref-2", PaymentReference(PaymentPartial{Reference: "ref-2"}))
	assert.Equal(t, "", PaymentReference(PaymentPending{}))
	assert.Equal(t, "", PaymentReference(nil))
}
