package notifier

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// Payload JSON-запись, которую получают таблица и webhook
type Payload struct {
	ID        string   `json:"id"`
	StartTime string   `json:"startTime"` // ISO 8601, UTC
	PetName   string   `json:"petName"`
	OwnerName string   `json:"ownerName"`
	Whatsapp  string   `json:"whatsapp"`
	Service   string   `json:"service"`
	Weight    string   `json:"weight"`
	Addons    []string `json:"addons"`
	Price     float64  `json:"price"`
}

// NewPayload собирает payload из записи о бронировании
func NewPayload(record domain.BookingRecord) Payload {
	addons := record.Addons
	if addons == nil {
		addons = []string{}
	}

	return Payload{
		ID:        record.ID,
		StartTime: record.StartTime.UTC().Format(time.RFC3339Nano),
		PetName:   record.PetName,
		OwnerName: record.OwnerName,
		Whatsapp:  record.Whatsapp,
		Service:   record.Service,
		Weight:    record.Weight,
		Addons:    addons,
		Price:     record.Price.Float(),
	}
}
