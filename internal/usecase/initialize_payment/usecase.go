package initialize_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/xsalon/scheduling-service/internal/domain"
	appointmentRepo "github.com/xsalon/scheduling-service/internal/infra/storage/appointment"
	accountsClient "github.com/xsalon/scheduling-service/internal/integrations/accounts"
	"github.com/xsalon/scheduling-service/internal/integrations/paymentprovider"
)

const currency = "ETB"

// UseCase starts the deposit checkout for a pending appointment. The
// transaction reference is persisted before the gateway call so the webhook
// can always resolve it back to the appointment.
type UseCase struct {
	appointmentRepo AppointmentRepository
	provider        PaymentProviderClient
	accounts        AccountsClient
	txManager       TransactionManager
	callbackURL     string
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	provider PaymentProviderClient,
	accounts AccountsClient,
	txManager TransactionManager,
	callbackURL string,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		provider:        provider,
		accounts:        accounts,
		txManager:       txManager,
		callbackURL:     callbackURL,
		logger:          logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("InitializePayment: appointment=%d, customer=%d", req.AppointmentID, req.CustomerID)

	if req.AppointmentID <= 0 || req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID and customerID must be positive", ErrInvalidInput)
	}

	apt, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("InitializePayment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("InitializePayment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if apt.CustomerID != req.CustomerID {
		uc.logger.Warn("InitializePayment: customer=%d does not own appointment id=%d", req.CustomerID, apt.ID)
		return nil, ErrAccessDenied
	}

	if apt.Status != domain.StatusPendingPayment {
		return nil, ErrNotAwaitingPayment
	}
	switch apt.Payment.(type) {
	case domain.PaymentPending, domain.PaymentFailed:
		// A fresh or previously failed deposit may start a new checkout.
	default:
		return nil, ErrNotAwaitingPayment
	}

	customer, err := uc.accounts.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, accountsClient.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("InitializePayment: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	advance, total := apt.Payment.Amounts()
	reference := paymentprovider.NewReference(apt.ID)

	// Persist the reference first. A checkout that fails after this point
	// simply leaves a reference the webhook will never see.
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		apt.Payment = domain.PaymentPending{
			AdvanceAmount: advance,
			TotalAmount:   total,
			Reference:     reference,
		}
		_, err := uc.appointmentRepo.Update(txCtx, apt)
		return err
	})
	if err != nil {
		uc.logger.Error("InitializePayment: failed to persist reference for appointment id=%d: %v", apt.ID, err)
		return nil, fmt.Errorf("%w: failed to persist payment reference: %v", ErrInternal, err)
	}

	result, err := uc.provider.InitializeTransaction(ctx, paymentprovider.InitializeRequest{
		Amount:      advance,
		Currency:    currency,
		Email:       customer.Email,
		FirstName:   customer.FirstName,
		LastName:    customer.LastName,
		Reference:   reference,
		CallbackURL: uc.callbackURL,
		ReturnURL:   req.ReturnURL,
	})
	if err != nil {
		if errors.Is(err, paymentprovider.ErrDeclined) {
			uc.logger.Warn("InitializePayment: provider declined reference=%s: %v", reference, err)
			return nil, fmt.Errorf("%w: %v", ErrProviderRejected, err)
		}
		uc.logger.Error("InitializePayment: provider error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: provider error: %v", ErrInternal, err)
	}

	uc.logger.Info("InitializePayment: checkout started for appointment id=%d reference=%s", apt.ID, reference)

	return &Response{
		AppointmentID: apt.ID,
		Reference:     reference,
		CheckoutURL:   result.CheckoutURL,
		Amount:        advance,
		Currency:      currency,
	}, nil
}
