package check_in

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
	"github.com/xsalon/scheduling-service/internal/api/middleware"
	checkIn "github.com/xsalon/scheduling-service/internal/usecase/check_in"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgAppointmentNotFound  = "appointment not found"
	msgAccessDenied         = "access denied"
	msgNotConfirmed         = "only confirmed appointments can check in"
	msgWrongDay             = "appointment is not scheduled for today"
	msgTooEarly             = "check-in window has not opened yet"
	msgTooLate              = "check-in window has closed"
)

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/check-in
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

	result, err := h.useCase.Execute(r.Context(), &checkIn.Request{
		AppointmentID: appointmentID,
		CustomerID:    customerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkIn.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, checkIn.ErrAccessDenied):
			h.logger.Warn("POST /appointments/{id}/check-in - Access denied: customer_id=%d, appointment_id=%d", customerID, appointmentID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, checkIn.ErrInvalidStatusTransition):
			handlers.RespondError(w, http.StatusConflict, msgNotConfirmed)

		case errors.Is(err, checkIn.ErrWrongDay):
			handlers.RespondError(w, http.StatusConflict, msgWrongDay)

		case errors.Is(err, checkIn.ErrTooEarly):
			handlers.RespondError(w, http.StatusConflict, msgTooEarly)

		case errors.Is(err, checkIn.ErrTooLate):
			handlers.RespondError(w, http.StatusConflict, msgTooLate)

		case errors.Is(err, checkIn.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments/{id}/check-in - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/check-in - Checked in: appointment_id=%d, position=%d",
		result.AppointmentID, result.QueuePosition)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
