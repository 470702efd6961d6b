package create_quote

import (
	"github.com/m04kA/SMC-GroomingService/internal/domain"
	quotePrice "github.com/m04kA/SMC-GroomingService/internal/usecase/quote_price"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	Service string   `json:"service"`
	Weight  *string  `json:"weight,omitempty"`
	Addons  []string `json:"addons,omitempty"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Base           float64  `json:"base"`
	AddonsTotal    float64  `json:"addonsTotal"`
	Total          float64  `json:"total"`
	TotalFormatted string   `json:"totalFormatted"`
	Addons         []string `json:"addons"`
	EligibleAddons []string `json:"eligibleAddons"`
	IgnoredAddons  []string `json:"ignoredAddons"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *quotePrice.Request {
	req := &quotePrice.Request{
		Service: domain.ServiceType(r.Service),
		Addons:  make([]domain.AddonID, 0, len(r.Addons)),
	}
	if r.Weight != nil {
		weight := domain.PetWeight(*r.Weight)
		req.Weight = &weight
	}
	for _, id := range r.Addons {
		req.Addons = append(req.Addons, domain.AddonID(id))
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	return &QuoteResponse{
		Base:           resp.Base.Float(),
		AddonsTotal:    resp.AddonsTotal.Float(),
		Total:          resp.Total.Float(),
		TotalFormatted: resp.Total.String(),
		Addons:         addonStrings(resp.Addons),
		EligibleAddons: addonStrings(resp.Eligible),
		IgnoredAddons:  addonStrings(resp.Ignored),
	}
}

func addonStrings(ids []domain.AddonID) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		result = append(result, string(id))
	}
	return result
}
