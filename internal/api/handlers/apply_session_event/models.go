package apply_session_event

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/service/sessions"
	"github.com/m04kA/SMC-GroomingService/pkg/ptr"
)

// EventRequest HTTP request model.
// Поля заполняются в зависимости от type.
type EventRequest struct {
	Type      string  `json:"type"`
	PetName   *string `json:"petName,omitempty"`
	OwnerName *string `json:"ownerName,omitempty"`
	Whatsapp  *string `json:"whatsapp,omitempty"`
	Service   *string `json:"service,omitempty"`
	Weight    *string `json:"weight,omitempty"`
	Addon     *string `json:"addon,omitempty"`
	Date      *string `json:"date,omitempty"` // "2025-10-15"
	Hour      *int    `json:"hour,omitempty"`
}

// ToServiceEvent конвертирует HTTP запрос в событие сервиса сессий
func (r *EventRequest) ToServiceEvent() (sessions.Event, error) {
	event := sessions.Event{
		Type: sessions.EventType(r.Type),
		Hour: r.Hour,
	}

	if r.PetName != nil || r.OwnerName != nil || r.Whatsapp != nil {
		event.Contact = &domain.Contact{
			PetName:   ptr.Value(r.PetName),
			OwnerName: ptr.Value(r.OwnerName),
			Whatsapp:  ptr.Value(r.Whatsapp),
		}
	}
	if r.Service != nil {
		event.Service = ptr.Ptr(domain.ServiceType(*r.Service))
	}
	if r.Weight != nil {
		event.Weight = ptr.Ptr(domain.PetWeight(*r.Weight))
	}
	if r.Addon != nil {
		event.Addon = ptr.Ptr(domain.AddonID(*r.Addon))
	}
	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return sessions.Event{}, err
		}
		event.Date = &date
	}

	return event, nil
}
