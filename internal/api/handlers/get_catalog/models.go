package get_catalog

import (
	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Services []ServiceResponse `json:"services"`
	Weights  []WeightResponse  `json:"weights"`
	Addons   []AddonResponse   `json:"addons"`
	Schedule ScheduleResponse  `json:"schedule"`
}

// ServiceResponse услуга каталога
type ServiceResponse struct {
	Type          string `json:"type"`
	Label         string `json:"label"`
	DurationHours int    `json:"durationHours"`
	Category      string `json:"category"`
	// Prices цена по весовым категориям, пусто для визитов
	Prices map[string]float64 `json:"prices,omitempty"`
}

// WeightResponse весовая категория
type WeightResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// AddonResponse доп. услуга
type AddonResponse struct {
	ID              string   `json:"id"`
	Label           string   `json:"label"`
	Price           float64  `json:"price"`
	RequiresService *string  `json:"requiresService,omitempty"`
	RequiresWeight  []string `json:"requiresWeight,omitempty"`
	ExcludesWeight  []string `json:"excludesWeight,omitempty"`
	ExclusionGroup  *string  `json:"exclusionGroup,omitempty"`
}

// ScheduleResponse расписание салона
type ScheduleResponse struct {
	WorkingHours      []int    `json:"workingHours"`
	VisitWorkingHours []int    `json:"visitWorkingHours"`
	LunchHour         int      `json:"lunchHour"`
	ClosingHour       int      `json:"closingHour"`
	MaxCapacity       int      `json:"maxCapacity"`
	ClosedWeekdays    []string `json:"closedWeekdays"`
}

// FromDomainCatalog конвертирует каталог в HTTP response
func FromDomainCatalog(catalog *domain.Catalog) *CatalogResponse {
	resp := &CatalogResponse{
		Services: make([]ServiceResponse, 0, len(catalog.Services)),
		Weights:  make([]WeightResponse, 0, len(catalog.Weights)),
		Addons:   make([]AddonResponse, 0, len(catalog.Addons)),
		Schedule: ScheduleResponse{
			WorkingHours:      catalog.Schedule.WorkingHours,
			VisitWorkingHours: catalog.Schedule.VisitWorkingHours,
			LunchHour:         catalog.Schedule.LunchHour,
			ClosingHour:       catalog.Schedule.ClosingHour,
			MaxCapacity:       catalog.Schedule.MaxCapacity,
			ClosedWeekdays:    make([]string, 0, len(catalog.Schedule.ClosedWeekdays)),
		},
	}

	for _, def := range catalog.Services {
		service := ServiceResponse{
			Type:          string(def.Type),
			Label:         def.Label,
			DurationHours: def.DurationHours,
			Category:      string(def.Category),
		}
		if !def.IsVisit() {
			service.Prices = make(map[string]float64, len(catalog.Weights))
			for _, wc := range catalog.Weights {
				if price, ok := catalog.Prices.Lookup(wc.ID, def.Type); ok {
					service.Prices[string(wc.ID)] = price.Float()
				}
			}
		}
		resp.Services = append(resp.Services, service)
	}

	for _, wc := range catalog.Weights {
		resp.Weights = append(resp.Weights, WeightResponse{ID: string(wc.ID), Label: wc.Label})
	}

	for _, addon := range catalog.Addons {
		item := AddonResponse{
			ID:             string(addon.ID),
			Label:          addon.Label,
			Price:          addon.Price.Float(),
			RequiresWeight: weightStrings(addon.RequiresWeight),
			ExcludesWeight: weightStrings(addon.ExcludesWeight),
		}
		if addon.RequiresService != nil {
			service := string(*addon.RequiresService)
			item.RequiresService = &service
		}
		if group, ok := catalog.ExclusionGroups[addon.ID]; ok {
			g := string(group)
			item.ExclusionGroup = &g
		}
		resp.Addons = append(resp.Addons, item)
	}

	for _, day := range catalog.Schedule.ClosedWeekdays {
		resp.Schedule.ClosedWeekdays = append(resp.Schedule.ClosedWeekdays, day.String())
	}

	return resp
}

func weightStrings(weights []domain.PetWeight) []string {
	if len(weights) == 0 {
		return nil
	}
	result := make([]string, 0, len(weights))
	for _, w := range weights {
		result = append(result, string(w))
	}
	return result
}
