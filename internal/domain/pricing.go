package domain

// Quote is the price breakdown of a selection
type Quote struct {
	Base        Money
	AddonsTotal Money
	Total       Money
}

// ComputePrice returns the total price of the selection.
// Zero when the service or weight is unset or the service is a visit.
// Add-on ids unknown to the catalog are ignored.
func ComputePrice(catalog *Catalog, service *ServiceType, weight *PetWeight, addons AddonSet) Money {
	return ComputeQuote(catalog, service, weight, addons).Total
}

// ComputeQuote returns the price breakdown of the selection, see ComputePrice
func ComputeQuote(catalog *Catalog, service *ServiceType, weight *PetWeight, addons AddonSet) Quote {
	if service == nil || weight == nil {
		return Quote{}
	}

	def, ok := catalog.Service(*service)
	if !ok || def.IsVisit() {
		return Quote{}
	}

	base, ok := catalog.Prices.Lookup(*weight, *service)
	if !ok {
		return Quote{}
	}

	var addonsTotal Money
	for _, addon := range catalog.Addons {
		if addons.Has(addon.ID) {
			addonsTotal += addon.Price
		}
	}

	return Quote{
		Base:        base,
		AddonsTotal: addonsTotal,
		Total:       base + addonsTotal,
	}
}

// UnknownAddons returns the ids of the set that the catalog does not define, sorted
func UnknownAddons(catalog *Catalog, addons AddonSet) []AddonID {
	unknown := make([]AddonID, 0)
	for _, id := range addons.IDs() {
		if _, ok := catalog.Addon(id); !ok {
			unknown = append(unknown, id)
		}
	}
	return unknown
}
