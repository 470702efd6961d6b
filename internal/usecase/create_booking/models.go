package create_booking

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Contact   domain.Contact     // Имя питомца, владельца и WhatsApp
	Service   domain.ServiceType // Услуга
	Weight    *domain.PetWeight  // Вес питомца, обязателен для груминга
	Addons    []domain.AddonID   // Доп. услуги
	Date      time.Time          // Дата записи (без времени)
	StartTime types.TimeString   // Время начала (например, "10:00")
}

// Response модель ответа с созданной записью
type Response struct {
	ID        string
	Service   domain.ServiceType
	Weight    *domain.PetWeight
	Addons    []domain.AddonID
	Price     domain.Money
	Date      time.Time        // Полночь дня в часовом поясе салона
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
	Contact   domain.Contact
	CreatedAt time.Time

	// Notified false, если доставка хотя бы в один канал уведомлений не удалась
	Notified bool
}
