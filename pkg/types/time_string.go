package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeFormat возвращается, если строка не в формате HH:MM
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrNotWholeHour возвращается, если время не совпадает с началом часа
	ErrNotWholeHour = errors.New("types: time must be a whole hour")
)

const timeLayout = "15:04"

// TimeString время суток в формате "HH:MM" (например, "09:00")
type TimeString string

// NewTimeString создаёт TimeString из часов и минут времени t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromHour создаёт TimeString для начала часа
func NewTimeStringFromHour(hour int) TimeString {
	return TimeString(fmt.Sprintf("%02d:00", hour))
}

// IsZero проверяет, что время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// Hour возвращает час, если время совпадает с началом часа
func (t TimeString) Hour() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	if parsed.Minute() != 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotWholeHour, string(t))
	}
	return parsed.Hour(), nil
}

func (t TimeString) String() string {
	return string(t)
}
