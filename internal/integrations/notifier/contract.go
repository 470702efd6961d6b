package notifier

import (
	"context"
	"time"
)

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sink получатель записи о бронировании
type Sink interface {
	Name() string
	Send(ctx context.Context, payload Payload) error
}

// MetricsRecorder фиксирует результат отправки в sink
type MetricsRecorder interface {
	NotificationSent(sink string, duration time.Duration, err error)
}
