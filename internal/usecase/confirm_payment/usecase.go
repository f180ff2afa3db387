package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/xsalon/scheduling-service/internal/domain"
	appointmentRepo "github.com/xsalon/scheduling-service/internal/infra/storage/appointment"
	"github.com/xsalon/scheduling-service/internal/integrations/paymentprovider"
)

// UseCase applies a payment outcome to its appointment. Success moves
// PENDING_PAYMENT to CONFIRMED and queues same-day appointments; failure
// records the failed deposit and leaves the status untouched. Replayed
// webhook deliveries are answered idempotently.
type UseCase struct {
	appointmentRepo AppointmentRepository
	provider        PaymentProviderClient
	queue           QueueAssigner
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	provider PaymentProviderClient,
	queue QueueAssigner,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		provider:        provider,
		queue:           queue,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: reference=%s", req.Reference)

	if req.Reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	verification, err := uc.provider.VerifyTransaction(ctx, req.Reference)
	if err != nil {
		if errors.Is(err, paymentprovider.ErrTransactionNotFound) {
			uc.logger.Warn("ConfirmPayment: gateway has no transaction for reference=%s", req.Reference)
			return nil, ErrTransactionNotFound
		}
		uc.logger.Error("ConfirmPayment: verification failed for reference=%s: %v", req.Reference, err)
		return nil, fmt.Errorf("%w: verification failed: %v", ErrInternal, err)
	}

	var response *Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		apt, err := uc.appointmentRepo.GetByPaymentReference(txCtx, req.Reference)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// Replayed delivery for an already settled payment.
		if apt.Status != domain.StatusPendingPayment {
			uc.logger.Info("ConfirmPayment: appointment id=%d already settled, status=%s", apt.ID, apt.Status)
			response = toResponse(apt, verification.Succeeded)
			return nil
		}

		advance, total := apt.Payment.Amounts()

		if !verification.Succeeded {
			apt.Payment = domain.PaymentFailed{
				AdvanceAmount: advance,
				TotalAmount:   total,
				Reference:     req.Reference,
			}
			if _, err := uc.appointmentRepo.Update(txCtx, apt); err != nil {
				return fmt.Errorf("%w: failed to record failed payment: %v", ErrInternal, err)
			}
			uc.logger.Warn("ConfirmPayment: payment failed for appointment id=%d reference=%s", apt.ID, req.Reference)
			response = toResponse(apt, false)
			return nil
		}

		now := uc.timeProvider.Now()

		if err := apt.TransitionTo(domain.StatusConfirmed); err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		apt.Payment = domain.PaymentPartial{
			AdvanceAmount: advance,
			TotalAmount:   total,
			Reference:     req.Reference,
			PaidAt:        now,
		}

		if _, err := uc.appointmentRepo.Update(txCtx, apt); err != nil {
			return fmt.Errorf("%w: failed to confirm appointment: %v", ErrInternal, err)
		}

		// Same-day confirmations join the back of today's queue immediately.
		if domain.SameDay(apt.ScheduledDate, now) {
			if _, err := uc.queue.AssignPosition(txCtx, apt); err != nil {
				return fmt.Errorf("%w: failed to assign queue position: %v", ErrInternal, err)
			}
		}

		uc.logger.Info("ConfirmPayment: appointment id=%d confirmed, reference=%s", apt.ID, req.Reference)
		response = toResponse(apt, true)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

func toResponse(apt *domain.Appointment, succeeded bool) *Response {
	return &Response{
		AppointmentID: apt.ID,
		Status:        string(apt.Status),
		PaymentStatus: string(apt.Payment.Status()),
		QueuePosition: apt.QueuePosition,
		Succeeded:     succeeded,
	}
}
