package domain

import "sort"

// AddonSet is a set of enabled add-ons.
// Mutating helpers return a new set and leave the receiver untouched.
type AddonSet map[AddonID]struct{}

// NewAddonSet builds a set from the given ids
func NewAddonSet(ids ...AddonID) AddonSet {
	set := make(AddonSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Has returns true if id is in the set
func (s AddonSet) Has(id AddonID) bool {
	_, ok := s[id]
	return ok
}

// Clone returns a copy of the set
func (s AddonSet) Clone() AddonSet {
	cp := make(AddonSet, len(s))
	for id := range s {
		cp[id] = struct{}{}
	}
	return cp
}

// With returns a copy of the set with id added
func (s AddonSet) With(id AddonID) AddonSet {
	cp := s.Clone()
	cp[id] = struct{}{}
	return cp
}

// Without returns a copy of the set with id removed
func (s AddonSet) Without(id AddonID) AddonSet {
	cp := s.Clone()
	delete(cp, id)
	return cp
}

// IDs returns the ids sorted alphabetically
func (s AddonSet) IDs() []AddonID {
	ids := make([]AddonID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IsAddonEligible decides whether the add-on can be selected for the given service and weight.
// Both service and weight must be chosen; visit-type services never take add-ons.
func IsAddonEligible(catalog *Catalog, addon AddonDefinition, service *ServiceType, weight *PetWeight) bool {
	if service == nil || weight == nil {
		return false
	}

	def, ok := catalog.Service(*service)
	if !ok || def.IsVisit() {
		return false
	}

	if !weightAllowed(addon, *weight) {
		return false
	}

	if addon.RequiresService != nil && *addon.RequiresService != *service {
		return false
	}

	return true
}

// EligibleAddons returns every add-on of the catalog selectable for service and weight
func EligibleAddons(catalog *Catalog, service *ServiceType, weight *PetWeight) AddonSet {
	eligible := make(AddonSet)
	for _, addon := range catalog.Addons {
		if IsAddonEligible(catalog, addon, service, weight) {
			eligible[addon.ID] = struct{}{}
		}
	}
	return eligible
}

// ReconcileAddons drops every enabled add-on that is not eligible for service and weight,
// including ids unknown to the catalog
func ReconcileAddons(catalog *Catalog, current AddonSet, service *ServiceType, weight *PetWeight) AddonSet {
	eligible := EligibleAddons(catalog, service, weight)
	result := make(AddonSet, len(current))
	for id := range current {
		if eligible.Has(id) {
			result[id] = struct{}{}
		}
	}
	return result
}

// ReconcileOnWeightChange forces off the add-ons that become ineligible under newWeight.
// Nothing is re-enabled: the set carries no memory of earlier choices.
func ReconcileOnWeightChange(catalog *Catalog, current AddonSet, service *ServiceType, newWeight PetWeight) AddonSet {
	return ReconcileAddons(catalog, current, service, &newWeight)
}

// ToggleAddon flips the add-on in the set.
// Ineligible ids leave the set unchanged. Enabling an add-on disables every other
// member of its exclusion group.
func ToggleAddon(catalog *Catalog, current AddonSet, id AddonID, service *ServiceType, weight *PetWeight) AddonSet {
	if current.Has(id) {
		return current.Without(id)
	}

	addon, ok := catalog.Addon(id)
	if !ok || !IsAddonEligible(catalog, addon, service, weight) {
		return current.Clone()
	}

	result := current.With(id)
	group, grouped := catalog.ExclusionGroups[id]
	if !grouped {
		return result
	}

	for other, otherGroup := range catalog.ExclusionGroups {
		if other != id && otherGroup == group {
			delete(result, other)
		}
	}

	return result
}

// weightAllowed checks RequiresWeight / ExcludesWeight of the add-on against w
func weightAllowed(addon AddonDefinition, w PetWeight) bool {
	if len(addon.RequiresWeight) > 0 && !containsWeight(addon.RequiresWeight, w) {
		return false
	}
	if containsWeight(addon.ExcludesWeight, w) {
		return false
	}
	return true
}

func containsWeight(weights []PetWeight, w PetWeight) bool {
	for _, candidate := range weights {
		if candidate == w {
			return true
		}
	}
	return false
}

// NormalizeAddons builds the set the customer would get by toggling ids on in order.
// Ineligible ids are dropped; within an exclusion group the last id wins.
func NormalizeAddons(catalog *Catalog, ids []AddonID, service *ServiceType, weight *PetWeight) AddonSet {
	result := make(AddonSet)
	for _, id := range ids {
		if result.Has(id) {
			continue
		}
		result = ToggleAddon(catalog, result, id, service, weight)
	}
	return result
}
