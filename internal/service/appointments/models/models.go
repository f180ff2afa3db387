package models

import (
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
)

// PaymentResponse flattens the payment state for API consumers.
type PaymentResponse struct {
	Status        string     `json:"status"`
	AdvanceAmount int64      `json:"advanceAmount"`
	TotalAmount   int64      `json:"totalAmount"`
	Reference     string     `json:"reference,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

// AppointmentResponse is the external representation of an appointment.
type AppointmentResponse struct {
	ID                       int64           `json:"id"`
	CustomerID               int64           `json:"customerId"`
	ServiceID                int64           `json:"serviceId"`
	ScheduledDate            string          `json:"scheduledDate"` // "2025-11-03"
	ScheduledTime            string          `json:"scheduledTime"` // "10:30"
	EstimatedDurationMinutes int             `json:"estimatedDurationMinutes"`
	EstimatedEndTime         string          `json:"estimatedEndTime"`
	Status                   string          `json:"status"`
	QueuePosition            *int            `json:"queuePosition,omitempty"`
	CheckedInAt              *time.Time      `json:"checkedInAt,omitempty"`
	StartedAt                *time.Time      `json:"startedAt,omitempty"`
	CompletedAt              *time.Time      `json:"completedAt,omitempty"`
	NoShowAt                 *time.Time      `json:"noShowAt,omitempty"`
	ActualDurationMinutes    *int            `json:"actualDurationMinutes,omitempty"`
	Payment                  PaymentResponse `json:"payment"`
	Notes                    *string         `json:"notes,omitempty"`
	AdminNotes               *string         `json:"adminNotes,omitempty"`
	CreatedAt                time.Time       `json:"createdAt"`
	UpdatedAt                time.Time       `json:"updatedAt"`
}

// ListAppointmentsRequest filters and paginates a customer's history.
type ListAppointmentsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
	Page       uint64  `json:"page"`
	PageSize   uint64  `json:"pageSize"`
}

// AppointmentListResponse is one page of a customer's appointment history.
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int64                  `json:"total"`
	Page         uint64                 `json:"page"`
	PageSize     uint64                 `json:"pageSize"`
}

// FromDomainAppointment converts a domain appointment to its API shape.
func FromDomainAppointment(apt *domain.Appointment) *AppointmentResponse {
	advance, total := apt.Payment.Amounts()

	payment := PaymentResponse{
		Status:        string(apt.Payment.Status()),
		AdvanceAmount: advance,
		TotalAmount:   total,
		Reference:     domain.PaymentReference(apt.Payment),
	}

	switch p := apt.Payment.(type) {
	case domain.PaymentPartial:
		paidAt := p.PaidAt
		payment.PaidAt = &paidAt
	case domain.PaymentCompleted:
		paidAt := p.PaidAt
		payment.PaidAt = &paidAt
	}

	return &AppointmentResponse{
		ID:                       apt.ID,
		CustomerID:               apt.CustomerID,
		ServiceID:                apt.ServiceID,
		ScheduledDate:            apt.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime:            apt.ScheduledTime.String(),
		EstimatedDurationMinutes: apt.EstimatedDurationMinutes,
		EstimatedEndTime:         apt.EstimatedEndTime.String(),
		Status:                   string(apt.Status),
		QueuePosition:            apt.QueuePosition,
		CheckedInAt:              apt.CheckedInAt,
		StartedAt:                apt.StartedAt,
		CompletedAt:              apt.CompletedAt,
		NoShowAt:                 apt.NoShowAt,
		ActualDurationMinutes:    apt.ActualDurationMinutes,
		Payment:                  payment,
		Notes:                    apt.Notes,
		AdminNotes:               apt.AdminNotes,
		CreatedAt:                apt.CreatedAt,
		UpdatedAt:                apt.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a page of appointments.
func FromDomainAppointmentList(apts []*domain.Appointment) []*AppointmentResponse {
	result := make([]*AppointmentResponse, 0, len(apts))
	for _, apt := range apts {
		result = append(result, FromDomainAppointment(apt))
	}
	return result
}
