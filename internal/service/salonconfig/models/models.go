package models

import (
	"github.com/xsalon/scheduling-service/internal/domain"
)

// WorkingHourResponse is one weekday's opening rule.
type WorkingHourResponse struct {
	Weekday     int    `json:"weekday"` // 0 = Sunday
	OpeningTime string `json:"openingTime,omitempty"`
	ClosingTime string `json:"closingTime,omitempty"`
	IsClosed    bool   `json:"isClosed"`
}

// UpdateWorkingHourRequest replaces one weekday's opening rule.
type UpdateWorkingHourRequest struct {
	Weekday     int    `json:"weekday"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
	IsClosed    bool   `json:"isClosed"`
}

// ServiceResponse is one catalog entry.
type ServiceResponse struct {
	ID              int64   `json:"id"`
	NameEN          string  `json:"nameEn"`
	NameAM          string  `json:"nameAm"`
	DescriptionEN   *string `json:"descriptionEn,omitempty"`
	DescriptionAM   *string `json:"descriptionAm,omitempty"`
	Price           int64   `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	IsActive        bool    `json:"isActive"`
}

// SettingsResponse is the salon profile with payment policy.
type SettingsResponse struct {
	NameEN                   string `json:"nameEn"`
	NameAM                   string `json:"nameAm"`
	LocationEN               string `json:"locationEn"`
	LocationAM               string `json:"locationAm"`
	ContactPhone             string `json:"contactPhone"`
	ContactEmail             string `json:"contactEmail"`
	AdvancePaymentPercentage int    `json:"advancePaymentPercentage"`
}

// SalonInfoResponse bundles everything a booking client needs up front.
type SalonInfoResponse struct {
	Settings     SettingsResponse      `json:"settings"`
	WorkingHours []WorkingHourResponse `json:"workingHours"`
	Services     []ServiceResponse     `json:"services"`
}

func FromDomainRule(rule *domain.CalendarRule) WorkingHourResponse {
	resp := WorkingHourResponse{
		Weekday:  rule.Weekday,
		IsClosed: rule.IsClosed,
	}
	if !rule.IsClosed {
		resp.OpeningTime = rule.OpeningTime.String()
		resp.ClosingTime = rule.ClosingTime.String()
	}
	return resp
}

func FromDomainService(svc *domain.ServiceDefinition) ServiceResponse {
	return ServiceResponse{
		ID:              svc.ID,
		NameEN:          svc.NameEN,
		NameAM:          svc.NameAM,
		DescriptionEN:   svc.DescriptionEN,
		DescriptionAM:   svc.DescriptionAM,
		Price:           svc.Price,
		DurationMinutes: svc.DurationMinutes,
		IsActive:        svc.IsActive,
	}
}

func FromDomainSettings(s *domain.SalonSettings) SettingsResponse {
	return SettingsResponse{
		NameEN:                   s.NameEN,
		NameAM:                   s.NameAM,
		LocationEN:               s.LocationEN,
		LocationAM:               s.LocationAM,
		ContactPhone:             s.ContactPhone,
		ContactEmail:             s.ContactEmail,
		AdvancePaymentPercentage: s.AdvancePaymentPercentage,
	}
}
