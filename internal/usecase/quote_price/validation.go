package quote_price

import (
	"fmt"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if req.Weight != nil && !req.Weight.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidWeight, *req.Weight)
	}

	return nil
}

// catalogOrder возвращает id набора в порядке каталога
func catalogOrder(catalog *domain.Catalog, set domain.AddonSet) []domain.AddonID {
	result := make([]domain.AddonID, 0, len(set))
	for _, addon := range catalog.Addons {
		if set.Has(addon.ID) {
			result = append(result, addon.ID)
		}
	}
	return result
}

// ignoredAddons возвращает запрошенные id, не попавшие в итоговый набор, без повторов
func ignoredAddons(requested []domain.AddonID, kept domain.AddonSet) []domain.AddonID {
	ignored := make([]domain.AddonID, 0)
	seen := make(domain.AddonSet, len(requested))
	for _, id := range requested {
		if seen.Has(id) || kept.Has(id) {
			continue
		}
		seen[id] = struct{}{}
		ignored = append(ignored, id)
	}
	return ignored
}
