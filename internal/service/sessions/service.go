package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// maxApplyAttempts сколько раз пересчитывать событие при одновременном изменении сессии
const maxApplyAttempts = 3

// Service хранит сессии мастера записи в памяти
type Service struct {
	availability AvailabilityChecker
	booking      BookingCreator
	metrics      MetricsRecorder
	catalog      *domain.Catalog
	location     *time.Location
	displayDelay time.Duration
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger

	mu       sync.Mutex
	sessions map[string]*entry
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	availability AvailabilityChecker,
	booking BookingCreator,
	metrics MetricsRecorder,
	catalog *domain.Catalog,
	location *time.Location,
	displayDelay time.Duration,
	ttl time.Duration,
	logger Logger,
) *Service {
	return &Service{
		availability: availability,
		booking:      booking,
		metrics:      metrics,
		catalog:      catalog,
		location:     location,
		displayDelay: displayDelay,
		ttl:          ttl,
		timeProvider: realTimeProvider{},
		logger:       logger,
		sessions:     make(map[string]*entry),
	}
}

// Create открывает новую сессию на первом шаге
func (s *Service) Create(ctx context.Context) (*Session, error) {
	now := s.timeProvider.Now()
	e := &entry{
		id:        uuid.NewString(),
		selection: domain.NewSelection(),
		createdAt: now,
		updatedAt: now,
	}

	s.mu.Lock()
	s.sessions[e.id] = e
	active := len(s.sessions)
	s.mu.Unlock()

	s.reportActive(active)
	s.logger.Info("Sessions: created session id=%s", e.id)
	return s.snapshot(e), nil
}

// Get возвращает сессию. Отправленный выбор сбрасывается после задержки показа.
func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.settle(e)
	return s.snapshot(e), nil
}

// Apply применяет событие к выбору сессии
func (s *Service) Apply(ctx context.Context, id string, event Event) (*Session, error) {
	for attempt := 0; attempt < maxApplyAttempts; attempt++ {
		current, version, err := s.current(id)
		if err != nil {
			return nil, err
		}

		if current.Step == domain.StepSubmitted {
			return nil, fmt.Errorf("%w: selection already submitted", ErrInvalidEvent)
		}

		// Проверка часа обращается к хранилищу, поэтому выполняется без блокировки
		next, err := s.transition(ctx, current, event)
		if err != nil {
			s.logger.Warn("Sessions: event %s rejected for session id=%s: %v", event.Type, id, err)
			return nil, err
		}

		session, stored, err := s.store(id, version, next)
		if err != nil {
			return nil, err
		}
		if stored {
			return session, nil
		}
	}

	s.logger.Error("Sessions: session id=%s changed concurrently %d times", id, maxApplyAttempts)
	return nil, fmt.Errorf("%w: concurrent update of session", ErrInternal)
}

// current возвращает выбор сессии и его версию
func (s *Service) current(id string) (domain.Selection, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return domain.Selection{}, 0, ErrSessionNotFound
	}
	if e.submitting {
		return domain.Selection{}, 0, ErrSubmissionInProgress
	}
	s.settle(e)
	return e.selection, e.version, nil
}

// store сохраняет выбор, если с момента чтения сессия не менялась
func (s *Service) store(id string, version uint64, next domain.Selection) (*Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false, ErrSessionNotFound
	}
	if e.submitting {
		return nil, false, ErrSubmissionInProgress
	}
	if e.version != version {
		return nil, false, nil
	}

	e.selection = next
	e.version++
	e.updatedAt = s.timeProvider.Now()
	return s.snapshot(e), true, nil
}

// Submit отправляет выбор на создание записи.
// Одновременно для сессии выполняется не больше одной отправки.
func (s *Service) Submit(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if e.submitting {
		s.mu.Unlock()
		s.logger.Warn("Sessions: duplicate submit for session id=%s", id)
		return nil, ErrSubmissionInProgress
	}
	s.settle(e)
	if !e.selection.ReadyToSubmit(s.catalog) {
		s.mu.Unlock()
		return nil, ErrNotReadyToSubmit
	}
	e.submitting = true
	selection := e.selection
	s.mu.Unlock()

	s.logger.Info("Sessions: submitting session id=%s", id)
	resp, err := s.booking.Execute(ctx, toBookingRequest(selection))

	s.mu.Lock()
	defer s.mu.Unlock()

	e.submitting = false
	e.version++
	e.updatedAt = s.timeProvider.Now()

	if err != nil {
		s.logger.Warn("Sessions: submission failed for session id=%s: %v", id, err)
		e.selection = e.selection.SubmissionFailed()
		return nil, err
	}

	e.selection = e.selection.SubmissionSucceeded(e.updatedAt)
	e.lastBooking = resp
	s.logger.Info("Sessions: session id=%s submitted as appointment id=%s", id, resp.ID)

	return s.snapshot(e), nil
}

// Cleanup удаляет сессии, неактивные дольше ttl, и возвращает их число
func (s *Service) Cleanup() int {
	now := s.timeProvider.Now()

	s.mu.Lock()
	removed := 0
	for id, e := range s.sessions {
		if e.submitting || now.Sub(e.updatedAt) < s.ttl {
			continue
		}
		delete(s.sessions, id)
		removed++
	}
	active := len(s.sessions)
	s.mu.Unlock()

	s.reportActive(active)
	if removed > 0 {
		s.logger.Info("Sessions: removed %d expired sessions, %d active", removed, active)
	}
	return removed
}

// Run периодически удаляет истекшие сессии до отмены ctx
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}

// transition вычисляет новый выбор для события
func (s *Service) transition(ctx context.Context, current domain.Selection, event Event) (domain.Selection, error) {
	switch event.Type {
	case EventSetContact:
		if event.Contact == nil {
			return current, fmt.Errorf("%w: contact is required", ErrInvalidEvent)
		}
		contact := *event.Contact
		contact.Whatsapp = domain.FormatWhatsapp(contact.Whatsapp)
		return current.WithContact(contact), nil

	case EventChooseService:
		if event.Service == nil {
			return current, fmt.Errorf("%w: service is required", ErrInvalidEvent)
		}
		if _, ok := s.catalog.Service(*event.Service); !ok {
			return current, fmt.Errorf("%w: unknown service %s", ErrInvalidEvent, *event.Service)
		}
		return current.ChooseService(s.catalog, *event.Service), nil

	case EventChooseWeight:
		if event.Weight == nil || !event.Weight.IsValid() {
			return current, fmt.Errorf("%w: valid weight is required", ErrInvalidEvent)
		}
		return current.ChooseWeight(s.catalog, *event.Weight), nil

	case EventToggleAddon:
		if event.Addon == nil {
			return current, fmt.Errorf("%w: addon is required", ErrInvalidEvent)
		}
		if _, ok := s.catalog.Addon(*event.Addon); !ok {
			return current, fmt.Errorf("%w: unknown addon %s", ErrInvalidEvent, *event.Addon)
		}
		return current.ToggleAddon(s.catalog, *event.Addon), nil

	case EventChooseDate:
		if event.Date == nil || event.Date.IsZero() {
			return current, fmt.Errorf("%w: date is required", ErrInvalidEvent)
		}
		day := time.Date(event.Date.Year(), event.Date.Month(), event.Date.Day(), 0, 0, 0, 0, s.location)
		now := s.timeProvider.Now().In(s.location)
		if s.catalog.Schedule.IsClosedOn(day) || domain.IsDateInPast(day, now) {
			return current, ErrDateNotAvailable
		}
		return current.ChooseDate(day), nil

	case EventChooseTime:
		if event.Hour == nil {
			return current, fmt.Errorf("%w: hour is required", ErrInvalidEvent)
		}
		if current.Service == nil || current.Date == nil {
			return current, fmt.Errorf("%w: service and date must be chosen first", ErrStepIncomplete)
		}
		if err := s.checkHour(ctx, *current.Service, *current.Date, *event.Hour); err != nil {
			return current, err
		}
		return current.ChooseTime(*event.Hour), nil

	case EventAdvance:
		next, ok := current.Advance(s.catalog)
		if !ok {
			return current, ErrStepIncomplete
		}
		return next, nil

	case EventBack:
		next, ok := current.Back()
		if !ok {
			return current, fmt.Errorf("%w: no previous step", ErrInvalidEvent)
		}
		return next, nil

	default:
		return current, fmt.Errorf("%w: unknown event type %q", ErrInvalidEvent, event.Type)
	}
}

// checkHour проверяет час через use case доступности
func (s *Service) checkHour(ctx context.Context, service domain.ServiceType, date time.Time, hour int) error {
	resp, err := s.availability.Execute(ctx, &get_available_slots.Request{Service: service, Date: date})
	if err != nil {
		s.logger.Error("Sessions: availability check failed: %v", err)
		return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}
	if !resp.IsAvailable(hour) {
		return ErrSlotNotAvailable
	}
	return nil
}

// settle сбрасывает отправленный выбор после задержки показа. Вызывается под блокировкой.
func (s *Service) settle(e *entry) {
	settled := e.selection.Settle(s.timeProvider.Now(), s.displayDelay)
	if settled.Step != e.selection.Step {
		e.selection = settled
		e.lastBooking = nil
		e.version++
	}
}

// snapshot копирует состояние сессии. Вызывается под блокировкой.
func (s *Service) snapshot(e *entry) *Session {
	return &Session{
		ID:          e.id,
		Selection:   e.selection,
		Quote:       e.selection.Quote(s.catalog),
		Ready:       e.selection.ReadyToSubmit(s.catalog),
		Submitting:  e.submitting,
		LastBooking: e.lastBooking,
		CreatedAt:   e.createdAt,
		UpdatedAt:   e.updatedAt,
	}
}

func (s *Service) reportActive(n int) {
	if s.metrics != nil {
		s.metrics.SetActiveSessions(n)
	}
}

// toBookingRequest строит запрос на запись из выбора
func toBookingRequest(selection domain.Selection) *create_booking.Request {
	req := &create_booking.Request{
		Contact: selection.Contact,
		Weight:  selection.Weight,
		Addons:  selection.Addons.IDs(),
	}
	if selection.Service != nil {
		req.Service = *selection.Service
	}
	if selection.Date != nil {
		req.Date = *selection.Date
	}
	if selection.StartHour != nil {
		req.StartTime = types.NewTimeStringFromHour(*selection.StartHour)
	}
	return req
}
