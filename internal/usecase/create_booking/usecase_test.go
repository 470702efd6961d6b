package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
	"github.com/m04kA/SMC-GroomingService/pkg/ptr"
	"github.com/m04kA/SMC-GroomingService/pkg/txmanager"
)

var shopLocation = time.FixedZone("BRT", -3*60*60)

// вторник
var bookingDay = time.Date(2026, 3, 10, 0, 0, 0, 0, shopLocation)

var createdAt = time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)

type testDeps struct {
	repo     *mockAppointmentRepository
	tx       *inlineTxManager
	notifier *mockNotifier
	metrics  *mockMetrics
}

func newTestUseCase(now time.Time) (*UseCase, *testDeps) {
	deps := &testDeps{
		repo:     &mockAppointmentRepository{},
		tx:       &inlineTxManager{},
		notifier: &mockNotifier{},
		metrics:  &mockMetrics{},
	}
	uc := NewUseCase(deps.repo, deps.tx, deps.notifier, deps.metrics, domain.DefaultCatalog(), shopLocation, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	uc.newID = func() string { return "8c1f6d1e-4d1b-4a52-9a3c-0d5f2e7b9a10" }
	return uc, deps
}

func validRequest() *Request {
	return &Request{
		Contact: domain.Contact{
			PetName:   " Thor ",
			OwnerName: "Maria Silva",
			Whatsapp:  "11987654321",
		},
		Service:   domain.ServiceBath,
		Weight:    ptr.Ptr(domain.WeightKg10),
		Addons:    []domain.AddonID{domain.AddonTosaTesoura, domain.AddonHidratacao},
		Date:      bookingDay,
		StartTime: "10:00",
	}
}

func appointmentAt(hour int, span time.Duration) *domain.Appointment {
	start := domain.AtHour(bookingDay, hour).UTC()
	return &domain.Appointment{
		ID:        start.Format(time.RFC3339),
		Service:   domain.ServiceBath,
		StartTime: start,
		EndTime:   start.Add(span),
	}
}

func withCreatedAt(a *domain.Appointment) *domain.Appointment {
	cp := *a
	cp.CreatedAt = createdAt
	return &cp
}

func TestExecute_Success(t *testing.T) {
	uc, deps := newTestUseCase(bookingDay.AddDate(0, 0, -1))

	deps.repo.On("ListForDay", mock.Anything, bookingDay).Return([]*domain.Appointment{appointmentAt(10, time.Hour)}, nil).Once()
	deps.repo.On("Insert", mock.Anything, mock.MatchedBy(func(a *domain.Appointment) bool {
		return a.Price == domain.Reais(100) &&
			a.StartTime.Equal(domain.AtHour(bookingDay, 10)) &&
			a.EndTime.Equal(domain.AtHour(bookingDay, 11)) &&
			len(a.Addons) == 1 && a.Addons[0] == domain.AddonHidratacao
	})).Return(withCreatedAt, nil).Once()
	deps.metrics.On("AppointmentCreated", "BATH").Once()
	deps.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(r domain.BookingRecord) bool {
		return r.Service == "Só Banho" &&
			r.Weight == "Até 10kg" &&
			r.Time == "10:00" &&
			len(r.Addons) == 1 && r.Addons[0] == "Hidratação"
	})).Return(nil).Once()

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "8c1f6d1e-4d1b-4a52-9a3c-0d5f2e7b9a10", resp.ID)
	assert.Equal(t, domain.Reais(100), resp.Price)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, "11:00", resp.EndTime.String())
	assert.Equal(t, bookingDay, resp.Date)
	assert.Equal(t, "Thor", resp.Contact.PetName)
	assert.Equal(t, "(11) 98765-4321", resp.Contact.Whatsapp)
	assert.Equal(t, createdAt, resp.CreatedAt)
	assert.True(t, resp.Notified)
	assert.Equal(t, 1, deps.tx.calls)

	deps.repo.AssertExpectations(t)
	deps.notifier.AssertExpectations(t)
	deps.metrics.AssertExpectations(t)
}

func TestExecute_RetriesSerializationFailure(t *testing.T) {
	deps := &testDeps{
		repo:     &mockAppointmentRepository{},
		notifier: &mockNotifier{},
		metrics:  &mockMetrics{},
	}
	db := &fakeTxBeginner{}
	uc := NewUseCase(deps.repo, txmanager.NewTransactionManager(db), deps.notifier, deps.metrics,
		domain.DefaultCatalog(), shopLocation, logger.NewNop())
	uc.timeProvider = fixedTime{now: bookingDay.AddDate(0, 0, -1)}

	deps.repo.On("ListForDay", mock.Anything, bookingDay).Return([]*domain.Appointment{}, nil).Twice()
	deps.repo.On("Insert", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("insert: %w", &pq.Error{Code: "40001"})).Once()
	deps.repo.On("Insert", mock.Anything, mock.Anything).Return(withCreatedAt, nil).Once()
	deps.metrics.On("AppointmentCreated", "BATH").Once()
	deps.notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Once()

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, createdAt, resp.CreatedAt)
	require.Len(t, db.txs, 2)
	assert.True(t, db.txs[0].rolledBack)
	assert.True(t, db.txs[1].committed)
	deps.repo.AssertExpectations(t)
}

func TestExecute_SerializationFailureKeepsDriverError(t *testing.T) {
	uc, deps := newTestUseCase(bookingDay.AddDate(0, 0, -1))

	deps.repo.On("ListForDay", mock.Anything, bookingDay).Return(nil, &pq.Error{Code: "40001"}).Once()

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.True(t, txmanager.IsSerializationFailure(err))
}

func TestExecute_CapacityExhausted(t *testing.T) {
	uc, deps := newTestUseCase(bookingDay.AddDate(0, 0, -1))

	deps.repo.On("ListForDay", mock.Anything, bookingDay).Return([]*domain.Appointment{
		appointmentAt(9, time.Hour),
		appointmentAt(9, time.Hour),
	}, nil)
	deps.metrics.On("BookingRejected", "slot_not_available").Once()

	req := validRequest()
	req.StartTime = "09:00"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	deps.repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	deps.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	deps.metrics.AssertExpectations(t)
}

func TestExecute_GroomingSpanBlockedByNextHour(t *testing.T) {
	uc, deps := newTestUseCase(bookingDay.AddDate(0, 0, -1))

	deps.repo.On("ListForDay", mock.Anything, bookingDay).Return([]*domain.Appointment{
		appointmentAt(10, time.Hour),
		appointmentAt(10, time.Hour),
	}, nil)
	deps.metrics.On("BookingRejected", "slot_not_available").Once()

	req := validRequest()
	req.Service = domain.ServiceBathAndGrooming
	req.StartTime = "09:00"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_NotificationFailureKeepsBooking(t *testing.T) {
	uc, deps := newTestUseCase(bookingDay.AddDate(0, 0, -1))

	deps.repo.On("ListForDay", mock.Anything, bookingDay).Return([]*domain.Appointment{}, nil)
	deps.repo.On("Insert", mock.Anything, mock.Anything).Return(withCreatedAt, nil)
	deps.metrics.On("AppointmentCreated", "BATH").Once()
	deps.notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("webhook unavailable")).Once()

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.Notified)
	deps.notifier.AssertExpectations(t)
}

func TestExecute_VisitDropsWeightAndAddons(t *testing.T) {
	uc, deps := newTestUseCase(bookingDay.AddDate(0, 0, -1))

	deps.repo.On("ListForDay", mock.Anything, bookingDay).Return([]*domain.Appointment{}, nil)
	deps.repo.On("Insert", mock.Anything, mock.MatchedBy(func(a *domain.Appointment) bool {
		return a.Weight == nil && len(a.Addons) == 0 && a.Price == 0
	})).Return(withCreatedAt, nil).Once()
	deps.metrics.On("AppointmentCreated", "VISIT_HOTEL").Once()
	deps.notifier.On("Notify", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	req.Service = domain.ServiceVisitHotel
	req.StartTime = "12:00"
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, resp.Weight)
	assert.Equal(t, domain.Money(0), resp.Price)
	deps.repo.AssertExpectations(t)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		modify  func(r *Request)
		wantErr error
	}{
		{
			name:    "incomplete contact",
			now:     bookingDay.AddDate(0, 0, -1),
			modify:  func(r *Request) { r.Contact.OwnerName = "  " },
			wantErr: ErrContactIncomplete,
		},
		{
			name:    "unknown service",
			now:     bookingDay.AddDate(0, 0, -1),
			modify:  func(r *Request) { r.Service = "SPA" },
			wantErr: ErrServiceNotFound,
		},
		{
			name:    "weight missing for grooming",
			now:     bookingDay.AddDate(0, 0, -1),
			modify:  func(r *Request) { r.Weight = nil },
			wantErr: ErrWeightRequired,
		},
		{
			name:    "saturday",
			now:     bookingDay.AddDate(0, 0, -1),
			modify:  func(r *Request) { r.Date = time.Date(2026, 3, 14, 0, 0, 0, 0, shopLocation) },
			wantErr: ErrShopClosed,
		},
		{
			name:    "past date",
			now:     bookingDay.AddDate(0, 0, 1).Add(8 * time.Hour),
			modify:  func(r *Request) {},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "lunch hour for grooming",
			now:     bookingDay.AddDate(0, 0, -1),
			modify:  func(r *Request) { r.StartTime = "12:00" },
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "not a whole hour",
			now:     bookingDay.AddDate(0, 0, -1),
			modify:  func(r *Request) { r.StartTime = "10:30" },
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "hour already started",
			now:     domain.AtHour(bookingDay, 10).Add(5 * time.Minute),
			modify:  func(r *Request) {},
			wantErr: ErrTooLateToBook,
		},
		{
			name:    "grooming past closing",
			now:     bookingDay.AddDate(0, 0, -1),
			modify:  func(r *Request) { r.Service = domain.ServiceBathAndGrooming; r.StartTime = "17:00" },
			wantErr: ErrSlotNotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := newTestUseCase(tt.now)
			deps.repo.On("ListForDay", mock.Anything, mock.Anything).Return([]*domain.Appointment{}, nil).Maybe()
			deps.metrics.On("BookingRejected", mock.Anything).Once()

			req := validRequest()
			tt.modify(req)
			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			deps.repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			deps.metrics.AssertExpectations(t)
		})
	}
}

func TestExecute_InternalErrors(t *testing.T) {
	t.Run("list fails", func(t *testing.T) {
		uc, deps := newTestUseCase(bookingDay.AddDate(0, 0, -1))
		deps.repo.On("ListForDay", mock.Anything, bookingDay).Return(nil, errors.New("connection refused"))

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
		deps.metrics.AssertNotCalled(t, "BookingRejected", mock.Anything)
	})

	t.Run("insert fails", func(t *testing.T) {
		uc, deps := newTestUseCase(bookingDay.AddDate(0, 0, -1))
		deps.repo.On("ListForDay", mock.Anything, bookingDay).Return([]*domain.Appointment{}, nil)
		deps.repo.On("Insert", mock.Anything, mock.Anything).Return(nil, errors.New("duplicate key"))

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
		deps.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})
}
