package get_available_slots

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

type mockAppointmentRepository struct {
	mock.Mock
}

func (m *mockAppointmentRepository) ListForDay(ctx context.Context, dayStart time.Time) ([]*domain.Appointment, error) {
	args := m.Called(ctx, dayStart)
	appointments, _ := args.Get(0).([]*domain.Appointment)
	return appointments, args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}
