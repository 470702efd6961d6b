package get_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/service/appointments/models"
)

const (
	msgInvalidDate = "formato de data inválido, esperado AAAA-MM-DD"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: from (опционально, YYYY-MM-DD; по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.From = &from
	}

	result, err := h.service.ListFrom(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
