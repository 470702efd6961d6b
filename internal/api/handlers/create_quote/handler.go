package create_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	quotePrice "github.com/m04kA/SMC-GroomingService/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgServiceNotFound    = "serviço não encontrado"
	msgInvalidWeight      = "peso inválido"
	msgInvalidInput       = "dados inválidos"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrServiceNotFound):
			h.logger.Warn("POST /quotes - Service not found: service=%s", req.Service)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, quotePrice.ErrInvalidWeight):
			h.logger.Warn("POST /quotes - Invalid weight: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeight)

		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /quotes - Failed to quote: service=%s, error=%v", req.Service, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
