package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// ClosedReason причина, по которой на дату нельзя записаться
type ClosedReason string

const (
	ClosedReasonNone     ClosedReason = ""
	ClosedReasonWeekend  ClosedReason = "closed_weekday"
	ClosedReasonPastDate ClosedReason = "past_date"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Service domain.ServiceType // Услуга
	Date    time.Time          // Дата (время игнорируется, день берётся в часовом поясе салона)
}

// Response модель ответа со списком слотов
type Response struct {
	Service      domain.ServiceType
	Date         time.Time    // Полночь дня в часовом поясе салона
	Open         bool         // false для выходных и прошедших дат
	ClosedReason ClosedReason // Заполнено, если Open = false
	Slots        []Slot       // Все рабочие часы категории услуги; пусто, если Open = false
}

// Slot модель часового слота
type Slot struct {
	Hour           int
	StartTime      types.TimeString // "09:00"
	Available      bool
	AvailableSpots int // Свободные места на весь интервал услуги
	TotalSpots     int
}

// IsAvailable проверяет, доступен ли час в ответе
func (r *Response) IsAvailable(hour int) bool {
	for _, slot := range r.Slots {
		if slot.Hour == hour {
			return slot.Available
		}
	}
	return false
}
