package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListForDay(ctx context.Context, dayStart time.Time) ([]*domain.Appointment, error)
	Insert(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс рассылки уведомлений о новой записи
type Notifier interface {
	Notify(ctx context.Context, record domain.BookingRecord) error
}

// MetricsRecorder интерфейс бизнес-метрик записи
type MetricsRecorder interface {
	AppointmentCreated(serviceType string)
	BookingRejected(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
