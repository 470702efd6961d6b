package apply_session_event

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/service/sessions"
)

type SessionService interface {
	Apply(ctx context.Context, id string, event sessions.Event) (*sessions.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
