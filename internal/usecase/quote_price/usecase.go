package quote_price

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// UseCase use case для расчёта стоимости выбора
type UseCase struct {
	catalog *domain.Catalog
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog *domain.Catalog, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute рассчитывает стоимость. Недоступные доп. услуги и лишние из группы исключения не учитываются и возвращаются в Ignored.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем услугу
	if _, ok := uc.catalog.Service(req.Service); !ok {
		uc.logger.Warn("QuotePrice: service %s not found", req.Service)
		return nil, ErrServiceNotFound
	}

	// 3. Отбрасываем неизвестные и недоступные доп. услуги
	if unknown := domain.UnknownAddons(uc.catalog, domain.NewAddonSet(req.Addons...)); len(unknown) > 0 {
		uc.logger.Warn("QuotePrice: unknown add-ons %v", unknown)
	}
	reconciled := domain.NormalizeAddons(uc.catalog, req.Addons, &req.Service, req.Weight)
	ignored := ignoredAddons(req.Addons, reconciled)
	if len(ignored) > 0 {
		uc.logger.Warn("QuotePrice: ignored add-ons %v for service=%s", ignored, req.Service)
	}

	// 4. Считаем стоимость
	quote := domain.ComputeQuote(uc.catalog, &req.Service, req.Weight, reconciled)

	return &Response{
		Base:        quote.Base,
		AddonsTotal: quote.AddonsTotal,
		Total:       quote.Total,
		Addons:      catalogOrder(uc.catalog, reconciled),
		Eligible:    catalogOrder(uc.catalog, domain.EligibleAddons(uc.catalog, &req.Service, req.Weight)),
		Ignored:     ignored,
	}, nil
}
