package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Millisecond counts for the common units.
const (
	Day    = 86400000
	Hour   = 3600000
	Minute = 60000
	Second = 1000
)

// ErrInvalidTime is returned when a time of day cannot be read.
var ErrInvalidTime = errors.New("invalid time of day")

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// DateOnly returns midnight of the given date in the same location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns midnight of the current day
func Today() time.Time {
	return DateOnly(nowFunc())
}

// TimeOnly formats the time of day as HH:MM, or HH:MM:SS when includeSeconds is set (24h clock)
func TimeOnly(t time.Time, includeSeconds bool) string {
	if includeSeconds {
		return t.Format("15:04:05")
	}
	return t.Format("15:04")
}

// clockLayouts are tried in order when a time of day is given as text.
var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
	"3:04:05PM",
	"3:04PM",
	"3 PM",
	"3PM",
}

// ParseClock reads a time of day such as "14:30", "14:30:15" or "2:30 pm".
func ParseClock(s string) (time.Time, error) {
	text := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
}

// Combine takes the calendar date from date and the time of day from clock.
// clock may be a time.Time, a time.Duration since midnight, or text accepted by ParseClock.
// The result keeps the location of date.
func Combine(date time.Time, clock any) (time.Time, error) {
	var h, m, s int
	switch c := clock.(type) {
	case time.Time:
		h, m, s = c.Clock()
	case *time.Time:
		if c == nil {
			return time.Time{}, fmt.Errorf("%w: nil", ErrInvalidTime)
		}
		h, m, s = c.Clock()
	case time.Duration:
		if c < 0 || c >= 24*time.Hour {
			return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidTime, c)
		}
		h, m, s = int(c/time.Hour), int(c%time.Hour/time.Minute), int(c%time.Minute/time.Second)
	case string:
		t, err := ParseClock(c)
		if err != nil {
			return time.Time{}, err
		}
		h, m, s = t.Clock()
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidTime, clock)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, s, 0, date.Location()), nil
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysBetween returns the whole days from one date to another, ignoring the time of day.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Milliseconds() / Day)
}
