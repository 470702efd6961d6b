package submit_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingService/internal/service/sessions"
)

const (
	msgSessionNotFound      = "sessão não encontrada ou expirada"
	msgNotReadyToSubmit     = "revise os dados do agendamento antes de confirmar"
	msgSubmissionInProgress = "o agendamento já está sendo enviado"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.service.Submit(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrNotReadyToSubmit):
			h.logger.Warn("POST /sessions/{id}/submit - Selection not ready: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNotReadyToSubmit)

		case errors.Is(err, sessions.ErrSubmissionInProgress):
			h.logger.Warn("POST /sessions/{id}/submit - Duplicate submit: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSubmissionInProgress)

		default:
			// Ошибки создания записи
			status, msg := handlers.BookingErrorStatus(err)
			if status == http.StatusInternalServerError {
				h.logger.Error("POST /sessions/{id}/submit - Failed to submit session: session_id=%s, error=%v",
					sessionID, err)
				handlers.RespondInternalError(w)
				return
			}
			h.logger.Warn("POST /sessions/{id}/submit - Booking rejected: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, status, msg)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/submit - Session submitted: session_id=%s, appointment_id=%s",
		sessionID, session.LastBooking.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.NewSessionView(session))
}
