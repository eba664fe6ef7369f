package dateutil

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate  = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidRange = errors.New("check-out date must be after check-in date")
)

// DateFormat is the wire format for all date-only values.
const DateFormat = "2006-01-02"

// ToDateOnly parses a date string into its UTC-midnight representation.
// Plain YYYY-MM-DD values and RFC3339 timestamps are both accepted; a
// timestamp is truncated to the calendar date of its own zone.
func ToDateOnly(value string) (time.Time, error) {
	if t, err := time.Parse(DateFormat, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return Truncate(t), nil
}

// Truncate drops the time-of-day and timezone from t, keeping the calendar
// date it denotes in its own location, anchored at UTC midnight. All night
// arithmetic must go through this so that a date string means the same
// calendar day regardless of server timezone.
func Truncate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date at UTC midnight.
func Today() time.Time {
	return Truncate(time.Now().UTC())
}

// NightsBetween counts the nights between two date-only values, computed
// against their UTC-midnight representations.
func NightsBetween(checkIn, checkOut time.Time) (int, error) {
	in := Truncate(checkIn)
	out := Truncate(checkOut)

	nights := int(out.Sub(in).Hours() / 24)
	if out.Sub(in)%(24*time.Hour) != 0 {
		nights++
	}
	if nights <= 0 {
		return 0, ErrInvalidRange
	}
	return nights, nil
}
