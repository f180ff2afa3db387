package domain

import "time"

// PaymentStatus identifies the payment state of an appointment.
type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "PENDING"
	PaymentStatusPartial       PaymentStatus = "PARTIAL"
	PaymentStatusCompleted     PaymentStatus = "COMPLETED"
	PaymentStatusFailed        PaymentStatus = "FAILED"
	PaymentStatusRefunded      PaymentStatus = "REFUNDED"
	PaymentStatusPendingRefund PaymentStatus = "PENDING_REFUND"
)

// PaymentState is a sealed sum over payment statuses. Each variant carries
// only the fields that are meaningful in that state, so an unpaid appointment
// cannot hold a paid-at timestamp and a refund cannot lack a reference.
//
// Amounts are in whole currency units (ETB).
type PaymentState interface {
	Status() PaymentStatus
	Amounts() (advance, total int64)
	sealed()
}

// PaymentPending is the initial state: amounts are fixed, nothing collected.
// Reference is set once the provider transaction has been initialized.
type PaymentPending struct {
	AdvanceAmount int64
	TotalAmount   int64
	Reference     string
}

// PaymentPartial means the advance deposit has been collected.
type PaymentPartial struct {
	AdvanceAmount int64
	TotalAmount   int64
	Reference     string
	PaidAt        time.Time
}

// PaymentCompleted means the full amount has been settled.
type PaymentCompleted struct {
	AdvanceAmount int64
	TotalAmount   int64
	Reference     string
	PaidAt        time.Time
}

// PaymentFailed means the provider rejected the charge, or a paid advance was
// forfeited by a no-show.
type PaymentFailed struct {
	AdvanceAmount int64
	TotalAmount   int64
	Reference     string
}

// PaymentPendingRefund means a cancellation left a collected advance awaiting
// manual refund processing.
type PaymentPendingRefund struct {
	AdvanceAmount int64
	TotalAmount   int64
	Reference     string
	RequestedAt   time.Time
}

// PaymentRefunded means the advance was returned to the customer.
type PaymentRefunded struct {
	AdvanceAmount int64
	TotalAmount   int64
	Reference     string
	RefundedAt    time.Time
}

func (p PaymentPending) Status() PaymentStatus       { return PaymentStatusPending }
func (p PaymentPartial) Status() PaymentStatus       { return PaymentStatusPartial }
func (p PaymentCompleted) Status() PaymentStatus     { return PaymentStatusCompleted }
func (p PaymentFailed) Status() PaymentStatus        { return PaymentStatusFailed }
func (p PaymentPendingRefund) Status() PaymentStatus { return PaymentStatusPendingRefund }
func (p PaymentRefunded) Status() PaymentStatus      { return PaymentStatusRefunded }

func (p PaymentPending) Amounts() (int64, int64)       { return p.AdvanceAmount, p.TotalAmount }
func (p PaymentPartial) Amounts() (int64, int64)       { return p.AdvanceAmount, p.TotalAmount }
func (p PaymentCompleted) Amounts() (int64, int64)     { return p.AdvanceAmount, p.TotalAmount }
func (p PaymentFailed) Amounts() (int64, int64)        { return p.AdvanceAmount, p.TotalAmount }
func (p PaymentPendingRefund) Amounts() (int64, int64) { return p.AdvanceAmount, p.TotalAmount }
func (p PaymentRefunded) Amounts() (int64, int64)      { return p.AdvanceAmount, p.TotalAmount }

func (PaymentPending) sealed()       {}
func (PaymentPartial) sealed()       {}
func (PaymentCompleted) sealed()     {}
func (PaymentFailed) sealed()        {}
func (PaymentPendingRefund) sealed() {}
func (PaymentRefunded) sealed()      {}

// PaymentReference returns the provider transaction reference of the state,
// or "" when none has been assigned yet.
func PaymentReference(p PaymentState) string {
	switch v := p.(type) {
	case PaymentPending:
		return v.Reference
	case PaymentPartial:
		return v.Reference
	case PaymentCompleted:
		return v.Reference
	case PaymentFailed:
		return v.Reference
	case PaymentPendingRefund:
		return v.Reference
	case PaymentRefunded:
		return v.Reference
	default:
		return ""
	}
}

// AdvanceAmountFor computes the required deposit: ceil(total * percentage / 100).
func AdvanceAmountFor(total int64, percentage int) int64 {
	if total <= 0 || percentage <= 0 {
		return 0
	}
	return (total*int64(percentage) + 99) / 100
}
