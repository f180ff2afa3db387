package models

import (
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
)

// QueueEntry is one appointment's place in the day queue.
type QueueEntry struct {
	AppointmentID        int64      `json:"appointmentId"`
	CustomerID           int64      `json:"customerId"`
	ServiceID            int64      `json:"serviceId"`
	Position             int        `json:"position"`
	Status               string     `json:"status"`
	ScheduledTime        string     `json:"scheduledTime"`
	DurationMinutes      int        `json:"durationMinutes"`
	CheckedInAt          *time.Time `json:"checkedInAt,omitempty"`
	EstimatedWaitMinutes int        `json:"estimatedWaitMinutes"`
}

// QueueStats summarizes the day queue.
type QueueStats struct {
	Total              int `json:"total"`
	Waiting            int `json:"waiting"`
	CheckedIn          int `json:"checkedIn"`
	InProgress         int `json:"inProgress"`
	AverageWaitMinutes int `json:"averageWaitMinutes"`
}

// QueueResponse is the full day queue with summary stats.
type QueueResponse struct {
	Date    string       `json:"date"`
	Entries []QueueEntry `json:"entries"`
	Stats   QueueStats   `json:"stats"`
}

// PositionOverride pins one appointment to an explicit position during a
// staff reorder.
type PositionOverride struct {
	AppointmentID int64 `json:"appointmentId"`
	Position      int   `json:"position"`
}

// PositionResponse is one customer's view of their place in the queue.
type PositionResponse struct {
	AppointmentID        int64  `json:"appointmentId"`
	Position             int    `json:"position"`
	PeopleAhead          int    `json:"peopleAhead"`
	EstimatedWaitMinutes int    `json:"estimatedWaitMinutes"`
	Status               string `json:"status"`
}

// FromDomainEntry builds a queue entry without wait estimation.
func FromDomainEntry(apt *domain.Appointment) QueueEntry {
	position := 0
	if apt.QueuePosition != nil {
		position = *apt.QueuePosition
	}

	return QueueEntry{
		AppointmentID:   apt.ID,
		CustomerID:      apt.CustomerID,
		ServiceID:       apt.ServiceID,
		Position:        position,
		Status:          string(apt.Status),
		ScheduledTime:   apt.ScheduledTime.String(),
		DurationMinutes: apt.EstimatedDurationMinutes,
		CheckedInAt:     apt.CheckedInAt,
	}
}
