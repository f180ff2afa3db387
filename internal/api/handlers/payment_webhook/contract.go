package payment_webhook

import (
	"context"

	confirmPayment "github.com/xsalon/scheduling-service/internal/usecase/confirm_payment"
)

type ConfirmPaymentUseCase interface {
	Execute(ctx context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error)
}

type SignatureVerifier interface {
	VerifyWebhookSignature(payload []byte, signature string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
