package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-GroomingService/internal/service/appointments/models"
)

// Service сервис для чтения записей
type Service struct {
	appointmentRepo AppointmentRepository
	catalog         *domain.Catalog
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	catalog *domain.Catalog,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		location:        location,
		timeProvider:    realTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%s", id)
	return models.FromDomainAppointment(s.catalog, appointment.In(s.location)), nil
}

// ListFrom получает записи, начинающиеся с указанной даты.
// Без даты берётся начало сегодняшнего дня в часовом поясе салона.
func (s *Service) ListFrom(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	from := domain.DayStart(s.timeProvider.Now().In(s.location))
	if req != nil && req.From != nil {
		// Берём календарный день запроса в часовом поясе салона
		from = time.Date(req.From.Year(), req.From.Month(), req.From.Day(), 0, 0, 0, 0, s.location)
	}

	s.logger.Info("ListFrom: fetching appointments from %s", from.Format(domain.DateFormat))

	appointments, err := s.appointmentRepo.ListFrom(ctx, from)
	if err != nil {
		s.logger.Error("ListFrom: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListFrom - repository error: %v", ErrInternal, err)
	}

	local := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		local = append(local, a.In(s.location))
	}

	s.logger.Info("ListFrom: found %d appointments", len(local))
	return models.FromDomainAppointmentList(s.catalog, local), nil
}
