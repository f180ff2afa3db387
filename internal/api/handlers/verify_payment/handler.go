package verify_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
	confirmPayment "github.com/xsalon/scheduling-service/internal/usecase/confirm_payment"
)

const (
	msgMissingReference    = "payment reference is required"
	msgReferenceNotFound   = "payment reference not found"
	msgTransactionNotFound = "transaction not found at the payment provider"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments/{reference}/verify
//
// Customers land here after the hosted checkout redirect. The outcome is
// pulled from the provider, so a forged reference cannot confirm anything.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	if reference == "" {
		handlers.RespondBadRequest(w, msgMissingReference)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{Reference: reference})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgReferenceNotFound)

		case errors.Is(err, confirmPayment.ErrTransactionNotFound):
			handlers.RespondNotFound(w, msgTransactionNotFound)

		case errors.Is(err, confirmPayment.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /payments/{reference}/verify - Failed: reference=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /payments/{reference}/verify - Verified: reference=%s, succeeded=%t", reference, result.Succeeded)
	handlers.RespondJSON(w, http.StatusOK, result)
}
