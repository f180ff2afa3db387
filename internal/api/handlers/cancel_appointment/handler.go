package cancel_appointment

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
	"github.com/xsalon/scheduling-service/internal/api/middleware"
	cancelAppointment "github.com/xsalon/scheduling-service/internal/usecase/cancel_appointment"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgAppointmentNotFound  = "appointment not found"
	msgAccessDenied         = "access denied"
	msgNoticePassed         = "cancellation notice period has passed"
	msgCannotCancel         = "appointment cannot be cancelled in its current status"
)

type Handler struct {
	useCase CancelAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// The body is optional; an empty body cancels without a reason.
	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		handlers.RespondBadRequest(w, "invalid request body")
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelAppointment.Request{
		AppointmentID: appointmentID,
		RequesterID:   requesterID,
		IsStaff:       middleware.IsStaff(r.Context()),
		Reason:        req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelAppointment.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, cancelAppointment.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Access denied: requester_id=%d, appointment_id=%d", requesterID, appointmentID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cancelAppointment.ErrCancelNoticePassed):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Notice passed: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgNoticePassed)

		case errors.Is(err, cancelAppointment.ErrInvalidStatusTransition):
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, cancelAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Cancelled: appointment_id=%d, payment_status=%s",
		result.AppointmentID, result.PaymentStatus)
	handlers.RespondJSON(w, http.StatusOK, &CancelAppointmentResponse{
		ID:            result.AppointmentID,
		Status:        result.Status,
		PaymentStatus: result.PaymentStatus,
	})
}
