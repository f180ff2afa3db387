package appointment

import (
	"database/sql"
	"fmt"

	"github.com/xsalon/scheduling-service/internal/domain"
)

// paymentRow is the flattened column form of the payment sum type. The
// repository is the only place that knows how variants map onto nullable
// columns; the rest of the code only sees domain.PaymentState.
type paymentRow struct {
	status            string
	advanceAmount     int64
	totalAmount       int64
	reference         sql.NullString
	paidAt            sql.NullTime
	refundRequestedAt sql.NullTime
	refundedAt        sql.NullTime
}

func flattenPayment(p domain.PaymentState) paymentRow {
	row := paymentRow{status: string(p.Status())}
	row.advanceAmount, row.totalAmount = p.Amounts()

	if ref := domain.PaymentReference(p); ref != "" {
		row.reference = sql.NullString{String: ref, Valid: true}
	}

	switch v := p.(type) {
	case domain.PaymentPartial:
		row.paidAt = sql.NullTime{Time: v.PaidAt, Valid: true}
	case domain.PaymentCompleted:
		row.paidAt = sql.NullTime{Time: v.PaidAt, Valid: true}
	case domain.PaymentPendingRefund:
		row.refundRequestedAt = sql.NullTime{Time: v.RequestedAt, Valid: true}
	case domain.PaymentRefunded:
		row.refundedAt = sql.NullTime{Time: v.RefundedAt, Valid: true}
	}

	return row
}

func (r paymentRow) toDomain() (domain.PaymentState, error) {
	switch domain.PaymentStatus(r.status) {
	case domain.PaymentStatusPending:
		return domain.PaymentPending{
			AdvanceAmount: r.advanceAmount,
			TotalAmount:   r.totalAmount,
			Reference:     r.reference.String,
		}, nil
	case domain.PaymentStatusPartial:
		if !r.reference.Valid || !r.paidAt.Valid {
			return nil, fmt.Errorf("%w: PARTIAL without reference or paid_at", ErrInvalidPaymentState)
		}
		return domain.PaymentPartial{
			AdvanceAmount: r.advanceAmount,
			TotalAmount:   r.totalAmount,
			Reference:     r.reference.String,
			PaidAt:        r.paidAt.Time,
		}, nil
	case domain.PaymentStatusCompleted:
		if !r.reference.Valid || !r.paidAt.Valid {
			return nil, fmt.Errorf("%w: COMPLETED without reference or paid_at", ErrInvalidPaymentState)
		}
		return domain.PaymentCompleted{
			AdvanceAmount: r.advanceAmount,
			TotalAmount:   r.totalAmount,
			Reference:     r.reference.String,
			PaidAt:        r.paidAt.Time,
		}, nil
	case domain.PaymentStatusFailed:
		return domain.PaymentFailed{
			AdvanceAmount: r.advanceAmount,
			TotalAmount:   r.totalAmount,
			Reference:     r.reference.String,
		}, nil
	case domain.PaymentStatusPendingRefund:
		if !r.reference.Valid || !r.refundRequestedAt.Valid {
			return nil, fmt.Errorf("%w: PENDING_REFUND without reference or requested_at", ErrInvalidPaymentState)
		}
		return domain.PaymentPendingRefund{
			AdvanceAmount: r.advanceAmount,
			TotalAmount:   r.totalAmount,
			Reference:     r.reference.String,
			RequestedAt:   r.refundRequestedAt.Time,
		}, nil
	case domain.PaymentStatusRefunded:
		if !r.reference.Valid || !r.refundedAt.Valid {
			return nil, fmt.Errorf("%w: REFUNDED without reference or refunded_at", ErrInvalidPaymentState)
		}
		return domain.PaymentRefunded{
			AdvanceAmount: r.advanceAmount,
			TotalAmount:   r.totalAmount,
			Reference:     r.reference.String,
			RefundedAt:    r.refundedAt.Time,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrInvalidPaymentState, r.status)
	}
}
