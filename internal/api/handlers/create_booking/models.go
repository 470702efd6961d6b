package create_booking

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	createBooking "github.com/m04kA/SMC-GroomingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PetName   string   `json:"petName"`
	OwnerName string   `json:"ownerName"`
	Whatsapp  string   `json:"whatsapp"`
	Service   string   `json:"service"`
	Weight    *string  `json:"weight,omitempty"`
	Addons    []string `json:"addons,omitempty"`
	Date      string   `json:"date"`      // "2025-10-15"
	StartTime string   `json:"startTime"` // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             string   `json:"id"`
	PetName        string   `json:"petName"`
	OwnerName      string   `json:"ownerName"`
	Whatsapp       string   `json:"whatsapp"`
	Service        string   `json:"service"`
	Weight         *string  `json:"weight,omitempty"`
	Addons         []string `json:"addons"`
	Price          float64  `json:"price"`
	PriceFormatted string   `json:"priceFormatted"`
	Date           string   `json:"date"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Notified       bool     `json:"notified"`
	CreatedAt      string   `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		Contact: domain.Contact{
			PetName:   r.PetName,
			OwnerName: r.OwnerName,
			Whatsapp:  r.Whatsapp,
		},
		Service:   domain.ServiceType(r.Service),
		Addons:    make([]domain.AddonID, 0, len(r.Addons)),
		Date:      date,
		StartTime: types.TimeString(r.StartTime),
	}

	if r.Weight != nil {
		weight := domain.PetWeight(*r.Weight)
		req.Weight = &weight
	}

	for _, id := range r.Addons {
		req.Addons = append(req.Addons, domain.AddonID(id))
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	result := &BookingResponse{
		ID:             resp.ID,
		PetName:        resp.Contact.PetName,
		OwnerName:      resp.Contact.OwnerName,
		Whatsapp:       resp.Contact.Whatsapp,
		Service:        string(resp.Service),
		Addons:         make([]string, 0, len(resp.Addons)),
		Price:          resp.Price.Float(),
		PriceFormatted: resp.Price.String(),
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		Notified:       resp.Notified,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}

	if resp.Weight != nil {
		weight := string(*resp.Weight)
		result.Weight = &weight
	}

	for _, id := range resp.Addons {
		result.Addons = append(result.Addons, string(id))
	}

	return result
}
