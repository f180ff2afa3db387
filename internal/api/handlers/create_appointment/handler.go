package create_appointment

import (
	"errors"
	"net/http"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
	"github.com/xsalon/scheduling-service/internal/api/middleware"
	createAppointment "github.com/xsalon/scheduling-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateOrTime    = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgServiceUnavailable   = "service is unavailable for booking"
	msgCustomerNotFound     = "customer account not found"
	msgCustomerInactive     = "customer account is inactive"
	msgDateInPast           = "appointment date is in the past"
	msgDateTooFarAhead      = "appointment date is too far ahead"
	msgOutsideBusinessHours = "requested time is outside business hours"
	msgDoubleBooking        = "you already have an appointment at this time"
	msgSlotFullyBooked      = "the requested time slot is fully booked"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotFullyBooked):
			h.logger.Warn("POST /appointments - Slot fully booked: customer_id=%d", customerID)
			handlers.RespondError(w, http.StatusConflict, msgSlotFullyBooked)

		case errors.Is(err, createAppointment.ErrCustomerDoubleBooking):
			h.logger.Warn("POST /appointments - Double booking: customer_id=%d", customerID)
			handlers.RespondError(w, http.StatusConflict, msgDoubleBooking)

		case errors.Is(err, createAppointment.ErrServiceUnavailable):
			h.logger.Warn("POST /appointments - Service unavailable: customer_id=%d, service_id=%d", customerID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceUnavailable)

		case errors.Is(err, createAppointment.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createAppointment.ErrCustomerInactive):
			h.logger.Warn("POST /appointments - Customer inactive: customer_id=%d", customerID)
			handlers.RespondForbidden(w, msgCustomerInactive)

		case errors.Is(err, createAppointment.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrDateTooFarAhead):
			handlers.RespondBadRequest(w, msgDateTooFarAhead)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, customer_id=%d", result.ID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
