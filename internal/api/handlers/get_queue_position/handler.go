package get_queue_position

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
	"github.com/xsalon/scheduling-service/internal/api/middleware"
	"github.com/xsalon/scheduling-service/internal/service/queue"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgAppointmentNotFound  = "appointment not found"
	msgAccessDenied         = "access denied"
	msgNotInQueue           = "appointment is not in today's queue"
)

type Handler struct {
	queue  QueueService
	logger Logger
}

func NewHandler(queue QueueService, logger Logger) *Handler {
	return &Handler{
		queue:  queue,
		logger: logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}/queue-position
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

	result, err := h.queue.PositionFor(r.Context(), appointmentID, requesterID, middleware.IsStaff(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, queue.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, queue.ErrAccessDenied):
			h.logger.Warn("GET /appointments/{id}/queue-position - Access denied: requester_id=%d, appointment_id=%d", requesterID, appointmentID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, queue.ErrNotInQueue):
			handlers.RespondNotFound(w, msgNotInQueue)

		default:
			h.logger.Error("GET /appointments/{id}/queue-position - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
