package apply_session_event

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingService/internal/service/sessions"
)

const (
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidDate          = "formato de data inválido, esperado AAAA-MM-DD"
	msgSessionNotFound      = "sessão não encontrada ou expirada"
	msgInvalidEvent         = "ação inválida"
	msgStepIncomplete       = "preencha os dados desta etapa para continuar"
	msgDateNotAvailable     = "não atendemos nesta data"
	msgSlotNotAvailable     = "este horário não está disponível"
	msgSubmissionInProgress = "o agendamento está sendo enviado"
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

// Handle POST /api/v1/sessions/{sessionId}/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req EventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	event, err := req.ToServiceEvent()
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/events - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	session, err := h.service.Apply(r.Context(), sessionID, event)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/events - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidEvent):
			handlers.RespondBadRequest(w, msgInvalidEvent)

		case errors.Is(err, sessions.ErrStepIncomplete):
			handlers.RespondBadRequest(w, msgStepIncomplete)

		case errors.Is(err, sessions.ErrDateNotAvailable):
			handlers.RespondBadRequest(w, msgDateNotAvailable)

		case errors.Is(err, sessions.ErrSlotNotAvailable):
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, sessions.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmissionInProgress)

		default:
			h.logger.Error("POST /sessions/{id}/events - Failed to apply event: session_id=%s, type=%s, error=%v",
				sessionID, req.Type, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/events - Event applied: session_id=%s, type=%s, step=%s",
		sessionID, req.Type, session.Selection.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewSessionView(session))
}
