package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// knownAppointments отбрасывает записи с услугами, которых нет в каталоге
func knownAppointments(catalog *domain.Catalog, appointments []*domain.Appointment) ([]*domain.Appointment, []*domain.Appointment) {
	known := make([]*domain.Appointment, 0, len(appointments))
	unknown := make([]*domain.Appointment, 0)
	for _, a := range appointments {
		if a == nil {
			continue
		}
		if _, ok := catalog.Service(a.Service); !ok {
			unknown = append(unknown, a)
			continue
		}
		known = append(known, a)
	}
	return known, unknown
}
