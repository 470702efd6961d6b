package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrContactIncomplete возвращается, когда не заполнены контактные данные
	ErrContactIncomplete = errors.New("create_booking: contact information is incomplete")

	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrWeightRequired возвращается, когда для груминга не указан вес питомца
	ErrWeightRequired = errors.New("create_booking: pet weight is required for this service")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrShopClosed возвращается, когда салон закрыт в указанную дату
	ErrShopClosed = errors.New("create_booking: shop is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда час не входит в рабочие часы услуги
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда выбранный час уже начался
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда выбранный слот недоступен (все места заняты)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
