package domain

// SlotRules are the schedule rules applied to one service category
type SlotRules struct {
	WorkingHours   []int
	LunchHour      int
	MaxCapacity    int
	ClosingHour    int
	LunchOverrides []LunchOverride
}

// lunchBlocked returns true when the lunch hour is not part of the working hours
func (r SlotRules) lunchBlocked() bool {
	return !containsHour(r.WorkingHours, r.LunchHour)
}

// lunchOverride returns true when a service of duration starting at startHour
// is listed as an exception to the lunch rule
func (r SlotRules) lunchOverride(duration, startHour int) bool {
	for _, o := range r.LunchOverrides {
		if o.DurationHours == duration && o.StartHour == startHour {
			return true
		}
	}
	return false
}

// IsSlotAvailable decides whether service can start at startHour.
//
// Rules, in order:
//  1. a service must be selected;
//  2. the service must finish at or before the closing hour;
//  3. the span must not touch the lunch hour when lunch is not a working hour,
//     unless a lunch override matches (duration, startHour);
//  4. every hour of the span, lunch included, must be strictly below capacity.
func IsSlotAvailable(service *ServiceDefinition, startHour int, occupancy Occupancy, rules SlotRules) bool {
	_, ok := checkSlot(service, startHour, occupancy, rules)
	return ok
}

// HourAvailability describes one candidate start hour
type HourAvailability struct {
	Hour      int
	Available bool
	FreeSpots int // free places over the whole span; 0 when unavailable
	Capacity  int
}

// AvailableHours evaluates every working hour of rules for the service
func AvailableHours(service *ServiceDefinition, occupancy Occupancy, rules SlotRules) []HourAvailability {
	result := make([]HourAvailability, 0, len(rules.WorkingHours))
	for _, hour := range rules.WorkingHours {
		free, ok := checkSlot(service, hour, occupancy, rules)
		if !ok {
			free = 0
		}
		result = append(result, HourAvailability{
			Hour:      hour,
			Available: ok,
			FreeSpots: free,
			Capacity:  rules.MaxCapacity,
		})
	}
	return result
}

// checkSlot applies the slot rules and returns the minimum number of free places over the checked hours
func checkSlot(service *ServiceDefinition, startHour int, occupancy Occupancy, rules SlotRules) (int, bool) {
	if service == nil || service.DurationHours <= 0 {
		return 0, false
	}

	duration := service.DurationHours
	endHour := startHour + duration

	if endHour > rules.ClosingHour {
		return 0, false
	}

	if rules.lunchBlocked() && startHour <= rules.LunchHour && rules.LunchHour < endHour &&
		!rules.lunchOverride(duration, startHour) {
		return 0, false
	}

	free := rules.MaxCapacity
	for h := startHour; h < endHour; h++ {
		left := rules.MaxCapacity - occupancy.At(h)
		if left <= 0 {
			return 0, false
		}
		if left < free {
			free = left
		}
	}

	return free, true
}

func containsHour(hours []int, hour int) bool {
	for _, h := range hours {
		if h == hour {
			return true
		}
	}
	return false
}
