package get_available_slots

import (
	"github.com/xsalon/scheduling-service/internal/domain"
	getAvailableSlots "github.com/xsalon/scheduling-service/internal/usecase/get_available_slots"
)

// SlotResponse is one candidate start time.
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:30"
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// AvailableSlotsResponse is the HTTP response model.
type AvailableSlotsResponse struct {
	Date            string         `json:"date"` // "2025-11-03"
	ServiceID       int64          `json:"serviceId"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case result to the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
		})
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
