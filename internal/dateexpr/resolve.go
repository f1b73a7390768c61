package dateexpr

import (
	"fmt"
	"time"

	"github.com/javiermolinar/afazeres/internal/dateutil"
)

// Resolve turns a match into a calendar date relative to today.
// The result is midnight in today's location.
//
// Errors:
//   - ErrUnresolved (wrapped) when the month name or relative phrase is unknown.
//   - *InvalidDateError when the fields do not form a real calendar date.
func Resolve(m Match, today time.Time) (time.Time, error) {
	today = dateutil.TruncateToDay(today)

	switch m.Shape {
	case ShapeWrittenOut:
		month, ok := LookupMonth(m.MonthToken)
		if !ok {
			return time.Time{}, fmt.Errorf("month %q: %w", m.MonthToken, ErrUnresolved)
		}
		return calendarDate(m.Day, month, m.Year, m.HasYear, today)

	case ShapeNumeric:
		return calendarDate(m.Day, m.Month, m.Year, m.HasYear, today)

	case ShapeRelative:
		date, _, ok := resolveRelative(m.Phrase, today)
		if !ok {
			return time.Time{}, fmt.Errorf("phrase %q: %w", m.Phrase, ErrUnresolved)
		}
		return date, nil

	default:
		return time.Time{}, ErrUnresolved
	}
}

// Parse finds the first date expression in text and resolves it.
// Returns ErrNoMatch when the text has no date-shaped fragment.
func Parse(text string, today time.Time) (time.Time, Match, error) {
	m, ok := Find(text)
	if !ok {
		return time.Time{}, Match{}, ErrNoMatch
	}
	date, err := Resolve(m, today)
	if err != nil {
		return time.Time{}, m, err
	}
	return date, m, nil
}

// RuleName returns the relative rule that would resolve phrase, or "" if none.
func RuleName(phrase string) string {
	_, name, _ := resolveRelative(phrase, time.Time{})
	return name
}

func calendarDate(day, month, year int, hasYear bool, today time.Time) (time.Time, error) {
	year = expandYear(year, hasYear, today)
	date, ok := dateutil.NewDate(year, month, day, today.Location())
	if !ok {
		return time.Time{}, &InvalidDateError{Day: day, Month: month, Year: year}
	}
	return date, nil
}

// expandYear defaults a missing year to today's and maps values below 100
// into the 2000s ("23" -> 2023).
func expandYear(year int, hasYear bool, today time.Time) int {
	if !hasYear {
		year = today.Year()
	}
	if year < 100 {
		year += 2000
	}
	return year
}
