package get_salon_info

import (
	"net/http"
	"strconv"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
)

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

// Handle GET /api/v1/salon
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.salonConfig.GetSalonInfo(r.Context())
	if err != nil {
		h.logger.Error("GET /salon - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleServices GET /api/v1/salon/services?activeOnly=true
func (h *Handler) HandleServices(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if raw := r.URL.Query().Get("activeOnly"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			handlers.RespondBadRequest(w, "activeOnly must be a boolean")
			return
		}
		activeOnly = parsed
	}

	result, err := h.salonConfig.GetServices(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /salon/services - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
