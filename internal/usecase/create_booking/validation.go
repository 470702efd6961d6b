package create_booking

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if !req.Contact.IsComplete() {
		return ErrContactIncomplete
	}

	if utf8.RuneCountInString(req.Contact.PetName) > domain.MaxPetNameLength {
		return fmt.Errorf("%w: petName is too long", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Contact.OwnerName) > domain.MaxOwnerNameLength {
		return fmt.Errorf("%w: ownerName is too long", ErrInvalidInput)
	}

	if len(req.Contact.Whatsapp) > domain.MaxWhatsappLength {
		return fmt.Errorf("%w: whatsapp is too long", ErrInvalidInput)
	}

	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if req.Weight != nil && !req.Weight.IsValid() {
		return fmt.Errorf("%w: unknown weight %s", ErrInvalidInput, *req.Weight)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что салон работает в этот день и дата не в прошлом
func validateDate(catalog *domain.Catalog, day, now time.Time) error {
	if catalog.Schedule.IsClosedOn(day) {
		return ErrShopClosed
	}

	if domain.IsDateInPast(day, now) {
		return ErrInvalidDate
	}

	return nil
}

// validateStartHour проверяет, что час входит в рабочие часы услуги и ещё не начался
func validateStartHour(rules domain.SlotRules, day time.Time, hour int, now time.Time) error {
	if !containsHour(rules.WorkingHours, hour) {
		return fmt.Errorf("%w: %02d:00 is not a working hour", ErrInvalidTimeSlot, hour)
	}

	if !domain.AtHour(day, hour).After(now) {
		return ErrTooLateToBook
	}

	return nil
}

// knownAppointments отбрасывает записи с услугами, которых нет в каталоге
func knownAppointments(catalog *domain.Catalog, appointments []*domain.Appointment, loc *time.Location) ([]*domain.Appointment, int) {
	known := make([]*domain.Appointment, 0, len(appointments))
	skipped := 0
	for _, a := range appointments {
		if a == nil {
			continue
		}
		if _, ok := catalog.Service(a.Service); !ok {
			skipped++
			continue
		}
		known = append(known, a.In(loc))
	}
	return known, skipped
}

// rejectionReason метка метрики для отказа в записи
func rejectionReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSlotNotAvailable):
		return "slot_not_available"
	case errors.Is(err, ErrTooLateToBook):
		return "too_late"
	case errors.Is(err, ErrShopClosed):
		return "shop_closed"
	case errors.Is(err, ErrInvalidDate):
		return "past_date"
	case errors.Is(err, ErrInvalidTimeSlot):
		return "invalid_time_slot"
	case errors.Is(err, ErrInternal):
		return ""
	default:
		return "invalid_input"
	}
}

func containsHour(hours []int, hour int) bool {
	for _, h := range hours {
		if h == hour {
			return true
		}
	}
	return false
}
