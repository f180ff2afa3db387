package get_customer_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
	"github.com/xsalon/scheduling-service/internal/api/middleware"
	appointmentsService "github.com/xsalon/scheduling-service/internal/service/appointments"
	"github.com/xsalon/scheduling-service/internal/service/appointments/models"
)

const msgInvalidStatus = "invalid status filter"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?status=&page=&pageSize=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req := &models.ListAppointmentsRequest{
		CustomerID: customerID,
	}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if page, err := strconv.ParseUint(query.Get("page"), 10, 64); err == nil {
		req.Page = page
	}
	if pageSize, err := strconv.ParseUint(query.Get("pageSize"), 10, 64); err == nil {
		req.PageSize = pageSize
	}

	result, err := h.service.ListForCustomer(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /appointments - Failed: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
