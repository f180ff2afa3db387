package reschedule_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
	"github.com/xsalon/scheduling-service/internal/api/middleware"
	rescheduleAppointment "github.com/xsalon/scheduling-service/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateOrTime    = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgAppointmentNotFound  = "appointment not found"
	msgAccessDenied         = "access denied"
	msgNotReschedulable     = "only confirmed appointments can be rescheduled"
	msgWindowPassed         = "reschedule window has passed"
	msgDateInPast           = "new date is in the past"
	msgDateTooFarAhead      = "new date is too far ahead"
	msgOutsideBusinessHours = "requested time is outside business hours"
	msgDoubleBooking        = "you already have an appointment at this time"
	msgSlotFullyBooked      = "the requested time slot is fully booked"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/reschedule
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

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, customerID)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, rescheduleAppointment.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Access denied: customer_id=%d, appointment_id=%d", customerID, appointmentID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, rescheduleAppointment.ErrNotReschedulable):
			handlers.RespondError(w, http.StatusConflict, msgNotReschedulable)

		case errors.Is(err, rescheduleAppointment.ErrRescheduleWindowPassed):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Window passed: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgWindowPassed)

		case errors.Is(err, rescheduleAppointment.ErrSlotFullyBooked):
			handlers.RespondError(w, http.StatusConflict, msgSlotFullyBooked)

		case errors.Is(err, rescheduleAppointment.ErrCustomerDoubleBooking):
			handlers.RespondError(w, http.StatusConflict, msgDoubleBooking)

		case errors.Is(err, rescheduleAppointment.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, rescheduleAppointment.ErrDateTooFarAhead):
			handlers.RespondBadRequest(w, msgDateTooFarAhead)

		case errors.Is(err, rescheduleAppointment.ErrOutsideBusinessHours):
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /appointments/{id}/reschedule - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/reschedule - Rescheduled: appointment_id=%d, new_date=%s",
		result.AppointmentID, result.ScheduledDate.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
