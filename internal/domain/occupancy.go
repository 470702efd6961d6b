package domain

import (
	"math"
	"time"
)

// Occupancy maps hour of day to the number of appointments occupying it
type Occupancy map[int]int

// At returns the number of appointments occupying hour h
func (o Occupancy) At(h int) int {
	return o[h]
}

// ComputeOccupancy counts, for the calendar day of date, how many appointments occupy each hour.
//
// Every working hour is present in the result (zero when free). Hours outside the working
// hours that an appointment touches (e.g. the lunch hour) are counted as well, so that
// historical data spanning lunch is never dropped. The span of an appointment is its
// end-start difference rounded to whole hours; timestamps are compared in their own location,
// callers are expected to convert appointments and date to the shop location beforehand.
func ComputeOccupancy(appointments []*Appointment, date time.Time, workingHours []int) Occupancy {
	occupancy := make(Occupancy, len(workingHours))
	for _, hour := range workingHours {
		occupancy[hour] = 0
	}

	for _, appointment := range appointments {
		if appointment == nil || !IsSameDay(appointment.StartTime, date) {
			continue
		}

		startHour := appointment.StartHour()
		span := appointment.SpanHours()
		for i := 0; i < span; i++ {
			occupancy[startHour+i]++
		}
	}

	return occupancy
}

// roundHours округляет длительность до целого числа часов (половина часа округляется вверх)
func roundHours(d time.Duration) int {
	return int(math.Round(d.Hours()))
}
