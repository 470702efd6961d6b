package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// UseCase use case для получения доступных часов записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         *domain.Catalog
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog *domain.Catalog,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных часов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: service=%s, date=%s", req.Service, req.Date.Format(domain.DateFormat))

	// 2. Получаем услугу из каталога
	service, ok := uc.catalog.Service(req.Service)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: service %s not found", req.Service)
		return nil, ErrServiceNotFound
	}

	// 3. Приводим дату к дню в часовом поясе салона
	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	now := uc.timeProvider.Now().In(uc.location)

	response := &Response{
		Service: req.Service,
		Date:    day,
		Open:    true,
		Slots:   []Slot{},
	}

	// 4. Выходные и прошедшие даты закрыты для записи
	if uc.catalog.Schedule.IsClosedOn(day) {
		uc.logger.Info("GetAvailableSlots: shop is closed on %s", day.Format(domain.DateFormat))
		response.Open = false
		response.ClosedReason = ClosedReasonWeekend
		return response, nil
	}
	if domain.IsDateInPast(day, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", day.Format(domain.DateFormat))
		response.Open = false
		response.ClosedReason = ClosedReasonPastDate
		return response, nil
	}

	// 5. Получаем записи на день
	appointments, err := uc.appointmentRepo.ListForDay(ctx, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	known, unknown := knownAppointments(uc.catalog, appointments)
	for _, a := range unknown {
		uc.logger.Warn("GetAvailableSlots: skipping appointment id=%s with unknown service %q", a.ID, a.Service)
	}

	// 6. Считаем занятость и доступность каждого рабочего часа
	rules := uc.catalog.Schedule.RulesFor(service)
	occupancy := domain.ComputeOccupancy(inLocation(known, uc.location), day, rules.WorkingHours)
	hours := domain.AvailableHours(&service, occupancy, rules)

	for _, h := range hours {
		slot := Slot{
			Hour:           h.Hour,
			StartTime:      types.NewTimeStringFromHour(h.Hour),
			Available:      h.Available,
			AvailableSpots: h.FreeSpots,
			TotalSpots:     h.Capacity,
		}

		// Уже начавшиеся сегодня часы недоступны
		if !domain.AtHour(day, h.Hour).After(now) {
			slot.Available = false
			slot.AvailableSpots = 0
		}

		response.Slots = append(response.Slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: %d appointments, %d hours evaluated for service=%s, date=%s",
		len(known), len(response.Slots), req.Service, day.Format(domain.DateFormat))

	return response, nil
}

// inLocation переводит время записей в часовой пояс салона
func inLocation(appointments []*domain.Appointment, loc *time.Location) []*domain.Appointment {
	result := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, a.In(loc))
	}
	return result
}
