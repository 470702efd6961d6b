package domain

import "time"

// Default schedule values
const (
	DefaultLunchHour          = 12
	DefaultClosingHour        = 18 // 6 PM
	DefaultMaxCapacityPerSlot = 2  // two groomers
)

// DefaultSubmittedDisplayDelay how long a submitted selection stays visible before it is reset
const DefaultSubmittedDisplayDelay = 3 * time.Second

// Contact field limits
const (
	MaxPetNameLength   = 100
	MaxOwnerNameLength = 100
	MaxWhatsappLength  = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
