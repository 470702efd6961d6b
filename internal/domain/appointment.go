package domain

import "time"

// Appointment represents a booked service.
// Contact fields are opaque to the engine; occupancy is derived from StartTime/EndTime only.
type Appointment struct {
	ID        string
	PetName   string
	OwnerName string
	Whatsapp  string
	Service   ServiceType
	Weight    *PetWeight // nil for visit-type services
	Addons    []AddonID
	Price     Money
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
}

// StartHour returns the hour of day the appointment starts at
func (a *Appointment) StartHour() int {
	return a.StartTime.Hour()
}

// SpanHours returns the appointment length rounded to whole hours
func (a *Appointment) SpanHours() int {
	return roundHours(a.EndTime.Sub(a.StartTime))
}

// In returns a copy of the appointment with timestamps converted to loc
func (a *Appointment) In(loc *time.Location) *Appointment {
	cp := *a
	cp.StartTime = a.StartTime.In(loc)
	cp.EndTime = a.EndTime.In(loc)
	return &cp
}

// BookingRecord is the flattened booking handed to notification sinks
type BookingRecord struct {
	ID        string
	StartTime time.Time
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	PetName   string
	OwnerName string
	Whatsapp  string
	Service   string
	Weight    string
	Addons    []string
	Price     Money
}

// NewBookingRecord builds the notification record for the appointment using catalog labels.
// Add-ons unknown to the catalog are skipped.
func NewBookingRecord(catalog *Catalog, a *Appointment) BookingRecord {
	record := BookingRecord{
		ID:        a.ID,
		StartTime: a.StartTime,
		Date:      a.StartTime.Format(DateFormat),
		Time:      a.StartTime.Format(TimeFormat),
		PetName:   a.PetName,
		OwnerName: a.OwnerName,
		Whatsapp:  a.Whatsapp,
		Service:   string(a.Service),
		Addons:    make([]string, 0, len(a.Addons)),
		Price:     a.Price,
	}

	if def, ok := catalog.Service(a.Service); ok {
		record.Service = def.Label
	}

	if a.Weight != nil {
		if label, ok := catalog.WeightLabel(*a.Weight); ok {
			record.Weight = label
		}
	}

	// Порядок меток совпадает с порядком каталога
	selected := NewAddonSet(a.Addons...)
	for _, addon := range catalog.Addons {
		if selected.Has(addon.ID) {
			record.Addons = append(record.Addons, addon.Label)
		}
	}

	return record
}
