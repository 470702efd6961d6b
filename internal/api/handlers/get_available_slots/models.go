package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-GroomingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date         string          `json:"date"`
	Service      string          `json:"service"`
	Open         bool            `json:"open"`
	ClosedReason string          `json:"closedReason,omitempty"`
	Slots        []AvailableSlot `json:"slots"`
}

// AvailableSlot модель часового слота
type AvailableSlot struct {
	StartTime      string `json:"startTime"`
	Available      bool   `json:"available"`
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:      slot.StartTime.String(),
			Available:      slot.Available,
			AvailableSpots: slot.AvailableSpots,
			TotalSpots:     slot.TotalSpots,
		}
	}

	return &AvailableSlotsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		Service:      string(resp.Service),
		Open:         resp.Open,
		ClosedReason: string(resp.ClosedReason),
		Slots:        slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(service, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Service: domain.ServiceType(service),
		Date:    date,
	}, nil
}
