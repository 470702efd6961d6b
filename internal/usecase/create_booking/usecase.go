package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// UseCase use case для создания записи на услугу
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	notifier        Notifier
	metrics         MetricsRecorder
	catalog         *domain.Catalog
	location        *time.Location
	newID           func() string
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics MetricsRecorder,
	catalog *domain.Catalog,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		catalog:         catalog,
		location:        location,
		newID:           uuid.NewString,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Занятость перечитывается в сериализуемой транзакции, чтобы два клиента не заняли последнее место.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	if reason := rejectionReason(err); reason != "" && uc.metrics != nil {
		uc.metrics.BookingRejected(reason)
	}
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	if req != nil {
		normalized := *req
		normalized.Contact = req.Contact.Normalize()
		req = &normalized
	}

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: pet=%q, service=%s, date=%s, time=%s",
		req.Contact.PetName, req.Service, req.Date.Format(domain.DateFormat), req.StartTime)

	hour, err := req.StartTime.Hour()
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid start time %q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	// 2. Получаем услугу из каталога
	service, ok := uc.catalog.Service(req.Service)
	if !ok {
		uc.logger.Warn("CreateBooking: service %s not found", req.Service)
		return nil, ErrServiceNotFound
	}

	// 3. Вес обязателен для груминга, у визитов он не хранится
	weight := req.Weight
	if service.IsVisit() {
		weight = nil
	} else if weight == nil {
		uc.logger.Warn("CreateBooking: weight is required for service %s", req.Service)
		return nil, ErrWeightRequired
	}

	// 4. Проверяем дату и час в часовом поясе салона
	now := uc.timeProvider.Now().In(uc.location)
	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)

	if err := validateDate(uc.catalog, day, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	rules := uc.catalog.Schedule.RulesFor(service)
	if err := validateStartHour(rules, day, hour, now); err != nil {
		uc.logger.Warn("CreateBooking: start hour validation failed: %v", err)
		return nil, err
	}

	// 5. Доп. услуги приводим к допустимому набору
	if unknown := domain.UnknownAddons(uc.catalog, domain.NewAddonSet(req.Addons...)); len(unknown) > 0 {
		uc.logger.Warn("CreateBooking: unknown add-ons %v", unknown)
	}
	addons := domain.NormalizeAddons(uc.catalog, req.Addons, &req.Service, weight)
	for _, id := range req.Addons {
		if !addons.Has(id) {
			uc.logger.Warn("CreateBooking: add-on %q dropped for service=%s", id, req.Service)
		}
	}

	startTime := domain.AtHour(day, hour)
	appointment := &domain.Appointment{
		ID:        uc.newID(),
		PetName:   req.Contact.PetName,
		OwnerName: req.Contact.OwnerName,
		Whatsapp:  req.Contact.Whatsapp,
		Service:   req.Service,
		Weight:    weight,
		Addons:    catalogOrder(uc.catalog, addons),
		Price:     domain.ComputePrice(uc.catalog, &req.Service, weight, addons),
		StartTime: startTime,
		EndTime:   startTime.Add(service.Duration()),
	}

	var created *domain.Appointment

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем записи на день с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.ListForDay(txCtx, day)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		known, skipped := knownAppointments(uc.catalog, appointments, uc.location)
		if skipped > 0 {
			uc.logger.Warn("CreateBooking: skipped %d appointments with unknown services", skipped)
		}

		// 6.2. Проверяем доступность слота
		occupancy := domain.ComputeOccupancy(known, day, rules.WorkingHours)
		if !domain.IsSlotAvailable(&service, hour, occupancy, rules) {
			uc.logger.Warn("CreateBooking: slot %02d:00 on %s is not available for service=%s",
				hour, day.Format(domain.DateFormat), req.Service)
			return ErrSlotNotAvailable
		}

		// 6.3. Сохраняем запись
		result, err := uc.appointmentRepo.Insert(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to insert appointment: %v", err)
			return fmt.Errorf("%w: failed to insert appointment: %w", ErrInternal, err)
		}

		created = result
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrSlotNotAvailable) && !errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%s", created.ID)
	if uc.metrics != nil {
		uc.metrics.AppointmentCreated(string(created.Service))
	}

	// 7. Уведомляем после коммита; ошибка доставки не отменяет запись
	notified := true
	if uc.notifier != nil {
		record := domain.NewBookingRecord(uc.catalog, created.In(uc.location))
		if err := uc.notifier.Notify(context.WithoutCancel(ctx), record); err != nil {
			uc.logger.Warn("CreateBooking: notification failed for appointment id=%s: %v", created.ID, err)
			notified = false
		}
	}

	return toResponse(created, uc.location, notified), nil
}

// toResponse конвертирует запись в ответ
func toResponse(a *domain.Appointment, loc *time.Location, notified bool) *Response {
	local := a.In(loc)
	return &Response{
		ID:        local.ID,
		Service:   local.Service,
		Weight:    local.Weight,
		Addons:    local.Addons,
		Price:     local.Price,
		Date:      domain.DayStart(local.StartTime),
		StartTime: types.NewTimeString(local.StartTime),
		EndTime:   types.NewTimeString(local.EndTime),
		Contact: domain.Contact{
			PetName:   local.PetName,
			OwnerName: local.OwnerName,
			Whatsapp:  local.Whatsapp,
		},
		CreatedAt: local.CreatedAt,
		Notified:  notified,
	}
}

// catalogOrder возвращает id набора в порядке каталога
func catalogOrder(catalog *domain.Catalog, set domain.AddonSet) []domain.AddonID {
	result := make([]domain.AddonID, 0, len(set))
	for _, addon := range catalog.Addons {
		if set.Has(addon.ID) {
			result = append(result, addon.ID)
		}
	}
	return result
}
