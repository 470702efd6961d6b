package sessions

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/create_booking"
)

// EventType тип события мастера записи
type EventType string

const (
	EventSetContact    EventType = "set_contact"
	EventChooseService EventType = "choose_service"
	EventChooseWeight  EventType = "choose_weight"
	EventToggleAddon   EventType = "toggle_addon"
	EventChooseDate    EventType = "choose_date"
	EventChooseTime    EventType = "choose_time"
	EventAdvance       EventType = "advance"
	EventBack          EventType = "back"
)

// Event событие, изменяющее выбор клиента. Заполняется только поле, нужное типу события.
type Event struct {
	Type    EventType
	Contact *domain.Contact
	Service *domain.ServiceType
	Weight  *domain.PetWeight
	Addon   *domain.AddonID
	Date    *time.Time
	Hour    *int
}

// Session снимок сессии мастера записи
type Session struct {
	ID          string
	Selection   domain.Selection
	Quote       domain.Quote
	Ready       bool // выбор можно отправить
	Submitting  bool
	LastBooking *create_booking.Response // результат последней успешной отправки
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// entry сессия в хранилище
type entry struct {
	id          string
	selection   domain.Selection
	version     uint64 // растёт при каждом изменении выбора
	submitting  bool
	lastBooking *create_booking.Response
	createdAt   time.Time
	updatedAt   time.Time
}
