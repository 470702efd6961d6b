package handlers

import (
	"errors"
	"net/http"

	createBooking "github.com/m04kA/SMC-GroomingService/internal/usecase/create_booking"
)

const (
	msgInvalidInput       = "dados inválidos"
	msgContactIncomplete  = "preencha o nome do pet, o nome do tutor e o WhatsApp"
	msgServiceNotFound    = "serviço não encontrado"
	msgWeightRequired     = "informe o peso do pet"
	msgInvalidBookingDate = "não é possível agendar em datas passadas"
	msgShopClosed         = "não atendemos aos sábados e domingos"
	msgInvalidTimeSlot    = "horário inválido para este serviço"
	msgTooLateToBook      = "este horário já passou"
	msgSlotNotAvailable   = "este horário não está mais disponível"
)

// BookingErrorStatus сопоставляет ошибку создания записи со статусом и сообщением ответа.
// Для неизвестных ошибок возвращается 500.
func BookingErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, createBooking.ErrSlotNotAvailable):
		return http.StatusConflict, msgSlotNotAvailable
	case errors.Is(err, createBooking.ErrServiceNotFound):
		return http.StatusNotFound, msgServiceNotFound
	case errors.Is(err, createBooking.ErrContactIncomplete):
		return http.StatusBadRequest, msgContactIncomplete
	case errors.Is(err, createBooking.ErrWeightRequired):
		return http.StatusBadRequest, msgWeightRequired
	case errors.Is(err, createBooking.ErrInvalidDate):
		return http.StatusBadRequest, msgInvalidBookingDate
	case errors.Is(err, createBooking.ErrShopClosed):
		return http.StatusBadRequest, msgShopClosed
	case errors.Is(err, createBooking.ErrInvalidTimeSlot):
		return http.StatusBadRequest, msgInvalidTimeSlot
	case errors.Is(err, createBooking.ErrTooLateToBook):
		return http.StatusBadRequest, msgTooLateToBook
	case errors.Is(err, createBooking.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidInput
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}
