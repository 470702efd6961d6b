package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

type Handler struct {
	response *CatalogResponse
	logger   Logger
}

// NewHandler каталог неизменяем, поэтому ответ собирается один раз
func NewHandler(catalog *domain.Catalog, logger Logger) *Handler {
	return &Handler{
		response: FromDomainCatalog(catalog),
		logger:   logger,
	}
}

// Handle GET /api/v1/catalog
// Публичный endpoint
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /catalog - Catalog retrieved: services=%d, addons=%d",
		len(h.response.Services), len(h.response.Addons))
	handlers.RespondJSON(w, http.StatusOK, h.response)
}
