package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
	"github.com/xsalon/scheduling-service/internal/service/salonconfig"
	salonModels "github.com/xsalon/scheduling-service/internal/service/salonconfig/models"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	salonConfig SalonConfigService
	logger      Logger
}

func NewHandler(salonConfig SalonConfigService, logger Logger) *Handler {
	return &Handler{
		salonConfig: salonConfig,
		logger:      logger,
	}
}

// HandleGet GET /api/v1/salon/working-hours
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	result, err := h.salonConfig.GetWorkingHours(r.Context())
	if err != nil {
		h.logger.Error("GET /salon/working-hours - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/salon/working-hours
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req salonModels.UpdateWorkingHourRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.salonConfig.UpdateWorkingHours(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, salonconfig.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /salon/working-hours - Failed: weekday=%d, error=%v", req.Weekday, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salon/working-hours - Updated: weekday=%d, closed=%t", result.Weekday, result.IsClosed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
