package payment_webhook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
	confirmPayment "github.com/xsalon/scheduling-service/internal/usecase/confirm_payment"
)

const (
	headerSignature = "X-Webhook-Signature"

	maxBodySize = 1 << 20 // 1 MiB
)

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
	} `json:"data"`
}

type Handler struct {
	useCase  ConfirmPaymentUseCase
	verifier SignatureVerifier
	logger   Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, verifier SignatureVerifier, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		verifier: verifier,
		logger:   logger,
	}
}

// Handle POST /api/v1/payments/webhook
//
// The gateway retries on any non-2xx response. Events for unknown references
// are acknowledged so a webhook that outruns the initialize response is not
// retried forever.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		handlers.RespondBadRequest(w, "failed to read request body")
		return
	}

	signature := r.Header.Get(headerSignature)
	if signature == "" || !h.verifier.VerifyWebhookSignature(body, signature) {
		h.logger.Warn("POST /payments/webhook - Invalid signature: remote_addr=%s", r.RemoteAddr)
		handlers.RespondError(w, http.StatusUnauthorized, "invalid webhook signature")
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil || event.Data.Reference == "" {
		handlers.RespondBadRequest(w, "invalid webhook payload")
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{Reference: event.Data.Reference})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrAppointmentNotFound),
			errors.Is(err, confirmPayment.ErrTransactionNotFound):
			h.logger.Warn("POST /payments/webhook - Unknown reference: reference=%s, event=%s", event.Data.Reference, event.Event)
			handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ignored"})

		default:
			h.logger.Error("POST /payments/webhook - Failed: reference=%s, error=%v", event.Data.Reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/webhook - Processed: reference=%s, appointment_id=%d, succeeded=%t",
		event.Data.Reference, result.AppointmentID, result.Succeeded)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "processed"})
}
