package models

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение записей
type ListAppointmentsRequest struct {
	From *time.Time `json:"from,omitempty"` // Начальная дата (опционально)
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID        string `json:"id"`
	PetName   string `json:"petName"`
	OwnerName string `json:"ownerName"`
	Whatsapp  string `json:"whatsapp"`

	Service      string   `json:"service"`
	ServiceLabel string   `json:"serviceLabel"`
	Weight       *string  `json:"weight,omitempty"`
	WeightLabel  *string  `json:"weightLabel,omitempty"`
	Addons       []string `json:"addons"`
	AddonLabels  []string `json:"addonLabels"`

	Price          float64 `json:"price"`
	PriceFormatted string  `json:"priceFormatted"` // "R$ 65,00"

	Date      string    `json:"date"`      // "2025-10-15"
	StartTime string    `json:"startTime"` // "10:00"
	EndTime   string    `json:"endTime"`   // "11:00"
	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO, подставляя названия из каталога
func FromDomainAppointment(catalog *domain.Catalog, a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	record := domain.NewBookingRecord(catalog, a)

	resp := &AppointmentResponse{
		ID:             a.ID,
		PetName:        a.PetName,
		OwnerName:      a.OwnerName,
		Whatsapp:       a.Whatsapp,
		Service:        string(a.Service),
		ServiceLabel:   record.Service,
		Addons:         make([]string, 0, len(a.Addons)),
		AddonLabels:    record.Addons,
		Price:          a.Price.Float(),
		PriceFormatted: a.Price.String(),
		Date:           record.Date,
		StartTime:      record.Time,
		EndTime:        a.EndTime.Format(domain.TimeFormat),
		CreatedAt:      a.CreatedAt,
	}

	for _, id := range a.Addons {
		resp.Addons = append(resp.Addons, string(id))
	}

	if a.Weight != nil {
		weight := string(*a.Weight)
		resp.Weight = &weight
		if record.Weight != "" {
			label := record.Weight
			resp.WeightLabel = &label
		}
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(catalog *domain.Catalog, appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if item := FromDomainAppointment(catalog, a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}
