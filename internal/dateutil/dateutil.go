// Package dateutil provides calendar arithmetic and reference-date parsing.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
)

// DateLayout is the layout used for reference dates on the command line and in the API.
const DateLayout = "2006-01-02"

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NewDate builds midnight of year-month-day in loc.
// Returns false when the triple is not a real calendar date
// (time.Date would silently normalize 30 February into March).
func NewDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NextMonthClamped returns the same day-of-month in the month after t.
// December wraps to January of the following year. When the day does not
// exist in the target month, the target month's last day is used.
func NextMonthClamped(t time.Time) time.Time {
	t = TruncateToDay(t)
	year, month := t.Year(), t.Month()+1
	if month > time.December {
		month = time.January
		year++
	}
	day := min(t.Day(), DaysIn(year, month))
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// NextWeekend returns the first Saturday strictly after t.
// If t is a Saturday, returns the Saturday one week later.
func NextWeekend(t time.Time) time.Time {
	t = TruncateToDay(t)
	daysUntil := (int(time.Saturday) - int(t.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return t.AddDate(0, 0, daysUntil)
}

// ThisWeekend returns the Saturday of the weekend t belongs to.
// On a Sunday that is the day before; on a Saturday it is t itself;
// on a weekday it is the upcoming Saturday.
func ThisWeekend(t time.Time) time.Time {
	t = TruncateToDay(t)
	switch t.Weekday() {
	case time.Sunday:
		return t.AddDate(0, 0, -1)
	case time.Saturday:
		return t
	default:
		return t.AddDate(0, 0, int(time.Saturday)-int(t.Weekday()))
	}
}
