package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/get_available_slots"
)

// AvailabilityChecker интерфейс проверки доступных часов
type AvailabilityChecker interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// BookingCreator интерфейс создания записи
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// MetricsRecorder интерфейс метрик сессий
type MetricsRecorder interface {
	SetActiveSessions(n int)
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

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
