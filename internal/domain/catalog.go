package domain

import (
	"fmt"
	"time"
)

// ServiceType identifies a bookable service
type ServiceType string

const (
	ServiceBath            ServiceType = "BATH"
	ServiceBathAndGrooming ServiceType = "BATH_AND_GROOMING"
	ServiceVisitDaycare    ServiceType = "VISIT_DAYCARE"
	ServiceVisitHotel      ServiceType = "VISIT_HOTEL"
)

// IsValid returns true if the service type is one of the known services
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceBath, ServiceBathAndGrooming, ServiceVisitDaycare, ServiceVisitHotel:
		return true
	}
	return false
}

// ServiceCategory groups services that share working hours and pricing rules
type ServiceCategory string

const (
	CategoryGrooming ServiceCategory = "grooming"
	CategoryVisit    ServiceCategory = "visit"
)

// ServiceDefinition describes a service of the catalog
type ServiceDefinition struct {
	Type          ServiceType
	Label         string
	DurationHours int
	Category      ServiceCategory
}

// IsVisit returns true for visit-type services (no weight, no add-ons, no price)
func (d ServiceDefinition) IsVisit() bool {
	return d.Category == CategoryVisit
}

// Duration returns the service duration as time.Duration
func (d ServiceDefinition) Duration() time.Duration {
	return time.Duration(d.DurationHours) * time.Hour
}

// PetWeight is a weight band used for pricing and add-on eligibility
type PetWeight string

const (
	WeightUpTo5  PetWeight = "UP_TO_5"
	WeightKg10   PetWeight = "KG_10"
	WeightKg15   PetWeight = "KG_15"
	WeightKg20   PetWeight = "KG_20"
	WeightKg25   PetWeight = "KG_25"
	WeightKg30   PetWeight = "KG_30"
	WeightOver30 PetWeight = "OVER_30"
)

// WeightOrder lists the weight bands in ascending order
var WeightOrder = []PetWeight{
	WeightUpTo5,
	WeightKg10,
	WeightKg15,
	WeightKg20,
	WeightKg25,
	WeightKg30,
	WeightOver30,
}

// IsValid returns true if the weight is one of the known bands
func (w PetWeight) IsValid() bool {
	for _, known := range WeightOrder {
		if w == known {
			return true
		}
	}
	return false
}

// WeightClass pairs a weight band with its display label
type WeightClass struct {
	ID    PetWeight
	Label string
}

// AddonID identifies an add-on service
type AddonID string

const (
	AddonTosaTesoura AddonID = "tosa_tesoura"
	AddonAparacao    AddonID = "aparacao"
	AddonHidratacao  AddonID = "hidratacao"
	AddonBotinhas    AddonID = "botinhas"
	AddonDesembolo   AddonID = "desembolo"
	AddonPatacure1   AddonID = "patacure1"
	AddonPatacure2   AddonID = "patacure2"
	AddonTintura     AddonID = "tintura"
)

// AddonDefinition describes an optional add-on and its eligibility constraints.
// Empty RequiresWeight / ExcludesWeight and nil RequiresService mean "no constraint".
type AddonDefinition struct {
	ID              AddonID
	Label           string
	Price           Money
	RequiresService *ServiceType
	RequiresWeight  []PetWeight
	ExcludesWeight  []PetWeight
}

// ExclusionGroup groups add-ons of which at most one may be enabled
type ExclusionGroup string

// PriceTable maps weight band and service to the base price
type PriceTable map[PetWeight]map[ServiceType]Money

// Lookup returns the base price for the given weight and service
func (t PriceTable) Lookup(weight PetWeight, service ServiceType) (Money, bool) {
	row, ok := t[weight]
	if !ok {
		return 0, false
	}
	price, ok := row[service]
	return price, ok
}

// LunchOverride allows a service of DurationHours starting at StartHour to straddle the lunch hour
type LunchOverride struct {
	DurationHours int
	StartHour     int
}

// Schedule holds the working-day rules of the shop
type Schedule struct {
	WorkingHours      []int // grooming start hours, lunch excluded
	VisitWorkingHours []int // visit start hours, lunch included
	LunchHour         int
	ClosingHour       int // services must finish at or before this hour
	MaxCapacity       int // concurrent appointments per hour (groomers on duty)
	LunchOverrides    []LunchOverride
	ClosedWeekdays    []time.Weekday
}

// WorkingHoursFor returns the start hours offered for the service category
func (s Schedule) WorkingHoursFor(category ServiceCategory) []int {
	if category == CategoryVisit {
		return s.VisitWorkingHours
	}
	return s.WorkingHours
}

// RulesFor builds the slot rules applied to the given service
func (s Schedule) RulesFor(service ServiceDefinition) SlotRules {
	return SlotRules{
		WorkingHours:   s.WorkingHoursFor(service.Category),
		LunchHour:      s.LunchHour,
		MaxCapacity:    s.MaxCapacity,
		ClosingHour:    s.ClosingHour,
		LunchOverrides: s.LunchOverrides,
	}
}

// IsClosedOn returns true if the shop does not take bookings on the weekday of date
func (s Schedule) IsClosedOn(date time.Time) bool {
	weekday := date.Weekday()
	for _, closed := range s.ClosedWeekdays {
		if weekday == closed {
			return true
		}
	}
	return false
}

// Catalog is the static, read-only configuration shared by every engine function
type Catalog struct {
	Services        []ServiceDefinition
	Weights         []WeightClass
	Prices          PriceTable
	Addons          []AddonDefinition
	ExclusionGroups map[AddonID]ExclusionGroup
	Schedule        Schedule
}

// Service returns the definition of the given service type
func (c *Catalog) Service(t ServiceType) (ServiceDefinition, bool) {
	for _, def := range c.Services {
		if def.Type == t {
			return def, true
		}
	}
	return ServiceDefinition{}, false
}

// Addon returns the definition of the given add-on
func (c *Catalog) Addon(id AddonID) (AddonDefinition, bool) {
	for _, addon := range c.Addons {
		if addon.ID == id {
			return addon, true
		}
	}
	return AddonDefinition{}, false
}

// WeightLabel returns the display label of the weight band
func (c *Catalog) WeightLabel(w PetWeight) (string, bool) {
	for _, wc := range c.Weights {
		if wc.ID == w {
			return wc.Label, true
		}
	}
	return "", false
}

// WithCapacity returns a copy of the catalog with a different per-hour capacity
func (c *Catalog) WithCapacity(capacity int) *Catalog {
	cp := *c
	cp.Schedule.MaxCapacity = capacity
	return &cp
}

// Validate performs the design-time consistency checks of the catalog
func (c *Catalog) Validate() error {
	if len(c.Services) == 0 {
		return fmt.Errorf("%w: no services defined", ErrInvalidCatalog)
	}
	if c.Schedule.MaxCapacity <= 0 {
		return fmt.Errorf("%w: max capacity must be positive", ErrInvalidCatalog)
	}
	if c.Schedule.ClosingHour <= 0 || c.Schedule.ClosingHour > 24 {
		return fmt.Errorf("%w: closing hour %d out of range", ErrInvalidCatalog, c.Schedule.ClosingHour)
	}

	for _, def := range c.Services {
		if def.DurationHours <= 0 {
			return fmt.Errorf("%w: service %s has non-positive duration", ErrInvalidCatalog, def.Type)
		}
		for _, wc := range c.Weights {
			price, ok := c.Prices.Lookup(wc.ID, def.Type)
			if !ok {
				return fmt.Errorf("%w: missing price for %s/%s", ErrInvalidCatalog, wc.ID, def.Type)
			}
			if price < 0 {
				return fmt.Errorf("%w: negative price for %s/%s", ErrInvalidCatalog, wc.ID, def.Type)
			}
			if def.IsVisit() && price != 0 {
				return fmt.Errorf("%w: visit service %s must be free", ErrInvalidCatalog, def.Type)
			}
		}
	}

	for _, addon := range c.Addons {
		if addon.Price < 0 {
			return fmt.Errorf("%w: add-on %s has negative price", ErrInvalidCatalog, addon.ID)
		}
		if addon.RequiresService != nil {
			if _, ok := c.Service(*addon.RequiresService); !ok {
				return fmt.Errorf("%w: add-on %s requires unknown service %s", ErrInvalidCatalog, addon.ID, *addon.RequiresService)
			}
		}
		selectable := false
		for _, wc := range c.Weights {
			if weightAllowed(addon, wc.ID) {
				selectable = true
				break
			}
		}
		if !selectable {
			return fmt.Errorf("%w: add-on %s is not selectable for any weight", ErrInvalidCatalog, addon.ID)
		}
	}

	for id := range c.ExclusionGroups {
		if _, ok := c.Addon(id); !ok {
			return fmt.Errorf("%w: exclusion group references unknown add-on %s", ErrInvalidCatalog, id)
		}
	}

	return nil
}

// DefaultCatalog returns the catalog of the shop
func DefaultCatalog() *Catalog {
	priceRow := func(bath, grooming int64) map[ServiceType]Money {
		return map[ServiceType]Money{
			ServiceBath:            Reais(bath),
			ServiceBathAndGrooming: Reais(grooming),
			ServiceVisitDaycare:    0,
			ServiceVisitHotel:      0,
		}
	}

	return &Catalog{
		Services: []ServiceDefinition{
			{Type: ServiceBath, Label: "Só Banho", DurationHours: 1, Category: CategoryGrooming},
			{Type: ServiceBathAndGrooming, Label: "Banho & Tosa", DurationHours: 2, Category: CategoryGrooming},
			{Type: ServiceVisitDaycare, Label: "Visita para Creche", DurationHours: 1, Category: CategoryVisit},
			{Type: ServiceVisitHotel, Label: "Visita para Hotel", DurationHours: 1, Category: CategoryVisit},
		},
		Weights: []WeightClass{
			{ID: WeightUpTo5, Label: "Até 5kg"},
			{ID: WeightKg10, Label: "Até 10kg"},
			{ID: WeightKg15, Label: "Até 15kg"},
			{ID: WeightKg20, Label: "Até 20kg"},
			{ID: WeightKg25, Label: "Até 25kg"},
			{ID: WeightKg30, Label: "Até 30kg"},
			{ID: WeightOver30, Label: "Acima de 30kg"},
		},
		Prices: PriceTable{
			WeightUpTo5:  priceRow(65, 130),
			WeightKg10:   priceRow(75, 150),
			WeightKg15:   priceRow(85, 170),
			WeightKg20:   priceRow(95, 190),
			WeightKg25:   priceRow(105, 210),
			WeightKg30:   priceRow(115, 230),
			WeightOver30: priceRow(150, 300),
		},
		Addons: []AddonDefinition{
			{ID: AddonTosaTesoura, Label: "Tosa na Tesoura", Price: Reais(160), RequiresWeight: []PetWeight{WeightUpTo5}},
			{ID: AddonAparacao, Label: "Aparação Contorno", Price: Reais(35)},
			{ID: AddonHidratacao, Label: "Hidratação", Price: Reais(25), ExcludesWeight: []PetWeight{WeightUpTo5}},
			{ID: AddonBotinhas, Label: "Botinhas", Price: Reais(25)},
			{ID: AddonDesembolo, Label: "Desembolo", Price: Reais(25)},
			{ID: AddonPatacure1, Label: "Patacure (1 cor)", Price: Reais(10)},
			{ID: AddonPatacure2, Label: "Patacure (2 cores)", Price: Reais(20)},
			{ID: AddonTintura, Label: "Tintura (1 parte)", Price: Reais(20)},
		},
		ExclusionGroups: map[AddonID]ExclusionGroup{
			AddonPatacure1: "patacure",
			AddonPatacure2: "patacure",
		},
		Schedule: Schedule{
			WorkingHours:      []int{9, 10, 11, 13, 14, 15, 16, 17},
			VisitWorkingHours: []int{9, 10, 11, 12, 13, 14, 15, 16},
			LunchHour:         DefaultLunchHour,
			ClosingHour:       DefaultClosingHour,
			MaxCapacity:       DefaultMaxCapacityPerSlot,
			LunchOverrides: []LunchOverride{
				// Banho & Tosa at 11:00 runs until 13:00
				{DurationHours: 2, StartHour: DefaultLunchHour - 1},
			},
			ClosedWeekdays: []time.Weekday{time.Saturday, time.Sunday},
		},
	}
}
