package domain

import "time"

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
// Сравниваются год, месяц и день в той локации, в которой заданы значения
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DayStart возвращает полночь того же дня в локации даты
func DayStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func IsDateInPast(date, now time.Time) bool {
	return DayStart(date).Before(DayStart(now))
}

// AtHour возвращает момент начала часа hour в день date (в локации date)
func AtHour(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}
