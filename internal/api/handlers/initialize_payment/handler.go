package initialize_payment

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
	"github.com/xsalon/scheduling-service/internal/api/middleware"
	initializePayment "github.com/xsalon/scheduling-service/internal/usecase/initialize_payment"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgInvalidRequestBody   = "invalid request body"
	msgAppointmentNotFound  = "appointment not found"
	msgAccessDenied         = "access denied"
	msgNotAwaitingPayment   = "appointment is not awaiting payment"
	msgCustomerNotFound     = "customer not found"
	msgProviderRejected     = "payment provider rejected the transaction"
)

type Handler struct {
	useCase InitializePaymentUseCase
	logger  Logger
}

func NewHandler(useCase InitializePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// The body is optional, an empty POST uses the configured return URL.
	var req InitializePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(appointmentID, customerID))
	if err != nil {
		switch {
		case errors.Is(err, initializePayment.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, initializePayment.ErrAccessDenied):
			h.logger.Warn("POST /appointments/{id}/payment - Access denied: customer_id=%d, appointment_id=%d", customerID, appointmentID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, initializePayment.ErrNotAwaitingPayment):
			handlers.RespondError(w, http.StatusConflict, msgNotAwaitingPayment)

		case errors.Is(err, initializePayment.ErrCustomerNotFound):
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, initializePayment.ErrProviderRejected):
			handlers.RespondError(w, http.StatusBadGateway, msgProviderRejected)

		case errors.Is(err, initializePayment.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments/{id}/payment - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/payment - Initialized: appointment_id=%d, reference=%s",
		result.AppointmentID, result.Reference)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
