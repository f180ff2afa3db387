package get_queue

import (
	"net/http"
	"time"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
	"github.com/xsalon/scheduling-service/internal/domain"
)

const msgInvalidDate = "invalid date format, expected YYYY-MM-DD"

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

// Handle GET /api/v1/queue?date=YYYY-MM-DD
//
// Without a date parameter the current day's queue is returned.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.queue.QueueForDay(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /queue - Failed: date=%s, error=%v", date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
