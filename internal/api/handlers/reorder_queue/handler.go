package reorder_queue

import (
	"errors"
	"net/http"
	"time"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
	"github.com/xsalon/scheduling-service/internal/domain"
	"github.com/xsalon/scheduling-service/internal/service/queue"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgEmptyOverrides     = "overrides must not be empty"
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

// Handle PUT /api/v1/queue/order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReorderQueueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, req.Date)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	if len(req.Overrides) == 0 {
		handlers.RespondBadRequest(w, msgEmptyOverrides)
		return
	}

	if err := h.queue.Reorder(r.Context(), date, req.Overrides); err != nil {
		switch {
		case errors.Is(err, queue.ErrInvalidReorder):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /queue/order - Failed: date=%s, error=%v", date.Format(domain.DateFormat), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result, err := h.queue.QueueForDay(r.Context(), date)
	if err != nil {
		h.logger.Error("PUT /queue/order - Reordered but failed to reload queue: date=%s, error=%v", date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /queue/order - Reordered: date=%s, overrides=%d", date.Format(domain.DateFormat), len(req.Overrides))
	handlers.RespondJSON(w, http.StatusOK, result)
}
