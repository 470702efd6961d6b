package create_booking

import (
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado AAAA-MM-DD"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		status, msg := handlers.BookingErrorStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("POST /bookings - Failed to create booking: service=%s, date=%s, error=%v",
				req.Service, req.Date, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("POST /bookings - Booking rejected: service=%s, date=%s, time=%s, error=%v",
			req.Service, req.Date, req.StartTime, err)
		handlers.RespondError(w, status, msg)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: appointment_id=%s, service=%s",
		result.ID, result.Service)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
