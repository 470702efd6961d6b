package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

var shopLocation = time.FixedZone("BRT", -3*60*60)

// вторник
var bookingDay = time.Date(2026, 3, 10, 0, 0, 0, 0, shopLocation)

func newTestUseCase(repo AppointmentRepository, now time.Time) *UseCase {
	uc := NewUseCase(repo, domain.DefaultCatalog(), shopLocation, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func appointmentAt(hour int, span time.Duration) *domain.Appointment {
	// Храним в UTC, как возвращает база
	start := domain.AtHour(bookingDay, hour).UTC()
	return &domain.Appointment{
		ID:        start.Format(time.RFC3339),
		Service:   domain.ServiceBath,
		StartTime: start,
		EndTime:   start.Add(span),
	}
}

func slotByHour(t *testing.T, resp *Response, hour int) Slot {
	t.Helper()
	for _, s := range resp.Slots {
		if s.Hour == hour {
			return s
		}
	}
	t.Fatalf("hour %d not in response", hour)
	return Slot{}
}

func TestExecute_FullHourRefusedNextAccepted(t *testing.T) {
	repo := &mockAppointmentRepository{}
	repo.On("ListForDay", mock.Anything, bookingDay).Return([]*domain.Appointment{
		appointmentAt(9, time.Hour),
		appointmentAt(9, time.Hour),
	}, nil).Once()

	uc := newTestUseCase(repo, bookingDay.AddDate(0, 0, -1))
	resp, err := uc.Execute(context.Background(), &Request{Service: domain.ServiceBath, Date: bookingDay})

	require.NoError(t, err)
	assert.True(t, resp.Open)
	assert.False(t, slotByHour(t, resp, 9).Available)
	assert.True(t, slotByHour(t, resp, 10).Available)
	assert.Equal(t, 2, slotByHour(t, resp, 10).AvailableSpots)
	assert.Equal(t, "10:00", slotByHour(t, resp, 10).StartTime.String())
	assert.Len(t, resp.Slots, 8)
	repo.AssertExpectations(t)
}

func TestExecute_VisitHoursIncludeLunch(t *testing.T) {
	repo := &mockAppointmentRepository{}
	repo.On("ListForDay", mock.Anything, bookingDay).Return([]*domain.Appointment{}, nil).Once()

	uc := newTestUseCase(repo, bookingDay.AddDate(0, 0, -1))
	resp, err := uc.Execute(context.Background(), &Request{Service: domain.ServiceVisitDaycare, Date: bookingDay})

	require.NoError(t, err)
	assert.True(t, resp.IsAvailable(12))
	assert.False(t, resp.IsAvailable(17), "17:00 is not a visit hour")
}

func TestExecute_GroomingCarveOut(t *testing.T) {
	repo := &mockAppointmentRepository{}
	repo.On("ListForDay", mock.Anything, bookingDay).Return([]*domain.Appointment{}, nil).Once()

	uc := newTestUseCase(repo, bookingDay.AddDate(0, 0, -1))
	resp, err := uc.Execute(context.Background(), &Request{Service: domain.ServiceBathAndGrooming, Date: bookingDay})

	require.NoError(t, err)
	assert.True(t, resp.IsAvailable(11))
	assert.True(t, resp.IsAvailable(16))
	assert.False(t, resp.IsAvailable(17))
}

func TestExecute_CarveOutRespectsLunchCapacity(t *testing.T) {
	visitAt := func() *domain.Appointment {
		a := appointmentAt(12, time.Hour)
		a.Service = domain.ServiceVisitDaycare
		return a
	}

	repo := &mockAppointmentRepository{}
	repo.On("ListForDay", mock.Anything, bookingDay).Return([]*domain.Appointment{visitAt(), visitAt()}, nil).Once()

	uc := newTestUseCase(repo, bookingDay.AddDate(0, 0, -1))
	resp, err := uc.Execute(context.Background(), &Request{Service: domain.ServiceBathAndGrooming, Date: bookingDay})

	require.NoError(t, err)
	assert.False(t, resp.IsAvailable(11), "lunch hour is full")
	assert.True(t, resp.IsAvailable(13))
}

func TestExecute_SkipsUnknownServices(t *testing.T) {
	unknown := appointmentAt(9, time.Hour)
	unknown.Service = "SPA"

	repo := &mockAppointmentRepository{}
	repo.On("ListForDay", mock.Anything, bookingDay).Return([]*domain.Appointment{
		appointmentAt(9, time.Hour),
		unknown,
	}, nil).Once()

	uc := newTestUseCase(repo, bookingDay.AddDate(0, 0, -1))
	resp, err := uc.Execute(context.Background(), &Request{Service: domain.ServiceBath, Date: bookingDay})

	require.NoError(t, err)
	assert.True(t, resp.IsAvailable(9))
	assert.Equal(t, 1, slotByHour(t, resp, 9).AvailableSpots)
}

func TestExecute_TodayPastHoursUnavailable(t *testing.T) {
	repo := &mockAppointmentRepository{}
	repo.On("ListForDay", mock.Anything, bookingDay).Return([]*domain.Appointment{}, nil).Once()

	now := domain.AtHour(bookingDay, 10).Add(15 * time.Minute)
	uc := newTestUseCase(repo, now)
	resp, err := uc.Execute(context.Background(), &Request{Service: domain.ServiceBath, Date: bookingDay})

	require.NoError(t, err)
	assert.False(t, resp.IsAvailable(9))
	assert.False(t, resp.IsAvailable(10))
	assert.True(t, resp.IsAvailable(11))
}

func TestExecute_ClosedDays(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		reason ClosedReason
	}{
		{"saturday", time.Date(2026, 3, 14, 0, 0, 0, 0, shopLocation), ClosedReasonWeekend},
		{"sunday", time.Date(2026, 3, 15, 0, 0, 0, 0, shopLocation), ClosedReasonWeekend},
		{"past date", bookingDay.AddDate(0, 0, -1), ClosedReasonPastDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockAppointmentRepository{}
			uc := newTestUseCase(repo, bookingDay.Add(8*time.Hour))

			resp, err := uc.Execute(context.Background(), &Request{Service: domain.ServiceBath, Date: tt.date})

			require.NoError(t, err)
			assert.False(t, resp.Open)
			assert.Equal(t, tt.reason, resp.ClosedReason)
			assert.Empty(t, resp.Slots)
			repo.AssertNotCalled(t, "ListForDay", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	t.Run("unknown service", func(t *testing.T) {
		uc := newTestUseCase(&mockAppointmentRepository{}, bookingDay)
		_, err := uc.Execute(context.Background(), &Request{Service: "SPA", Date: bookingDay})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("missing date", func(t *testing.T) {
		uc := newTestUseCase(&mockAppointmentRepository{}, bookingDay)
		_, err := uc.Execute(context.Background(), &Request{Service: domain.ServiceBath})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &mockAppointmentRepository{}
		repo.On("ListForDay", mock.Anything, bookingDay).Return(nil, errors.New("connection reset")).Once()

		uc := newTestUseCase(repo, bookingDay.AddDate(0, 0, -1))
		_, err := uc.Execute(context.Background(), &Request{Service: domain.ServiceBath, Date: bookingDay})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
