package handlers

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/service/sessions"
	"github.com/m04kA/SMC-GroomingService/pkg/ptr"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// SessionView HTTP представление сессии мастера записи
type SessionView struct {
	ID             string           `json:"id"`
	Step           string           `json:"step"`
	PetName        string           `json:"petName"`
	OwnerName      string           `json:"ownerName"`
	Whatsapp       string           `json:"whatsapp"`
	Service        *string          `json:"service,omitempty"`
	Weight         *string          `json:"weight,omitempty"`
	Addons         []string         `json:"addons"`
	Date           *string          `json:"date,omitempty"`
	StartTime      *string          `json:"startTime,omitempty"`
	Price          float64          `json:"price"`
	PriceFormatted string           `json:"priceFormatted"`
	Ready          bool             `json:"readyToSubmit"`
	Submitting     bool             `json:"submitting"`
	LastBooking    *LastBookingView `json:"lastBooking,omitempty"`
	CreatedAt      string           `json:"createdAt"`
	UpdatedAt      string           `json:"updatedAt"`
}

// LastBookingView краткие данные последней созданной записи
type LastBookingView struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Notified  bool   `json:"notified"`
}

// NewSessionView конвертирует снимок сессии в HTTP представление
func NewSessionView(s *sessions.Session) *SessionView {
	sel := s.Selection
	view := &SessionView{
		ID:             s.ID,
		Step:           string(sel.Step),
		PetName:        sel.Contact.PetName,
		OwnerName:      sel.Contact.OwnerName,
		Whatsapp:       sel.Contact.Whatsapp,
		Addons:         make([]string, 0, len(sel.Addons)),
		Price:          s.Quote.Total.Float(),
		PriceFormatted: s.Quote.Total.String(),
		Ready:          s.Ready,
		Submitting:     s.Submitting,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}

	if sel.Service != nil {
		view.Service = ptr.Ptr(string(*sel.Service))
	}
	if sel.Weight != nil {
		view.Weight = ptr.Ptr(string(*sel.Weight))
	}
	for _, id := range sel.Addons.IDs() {
		view.Addons = append(view.Addons, string(id))
	}
	if sel.Date != nil {
		view.Date = ptr.Ptr(sel.Date.Format(domain.DateFormat))
	}
	if sel.StartHour != nil {
		view.StartTime = ptr.Ptr(types.NewTimeStringFromHour(*sel.StartHour).String())
	}

	if b := s.LastBooking; b != nil {
		view.LastBooking = &LastBookingView{
			ID:        b.ID,
			Date:      b.Date.Format(domain.DateFormat),
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
			Notified:  b.Notified,
		}
	}

	return view
}
