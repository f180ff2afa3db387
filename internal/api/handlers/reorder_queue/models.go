package reorder_queue

import (
	queueModels "github.com/xsalon/scheduling-service/internal/service/queue/models"
)

// ReorderQueueRequest is the HTTP request model. Appointments not named in
// the overrides keep their relative order.
type ReorderQueueRequest struct {
	Date      string                         `json:"date"` // "2025-11-03", defaults to today
	Overrides []queueModels.PositionOverride `json:"overrides"`
}
