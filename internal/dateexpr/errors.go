package dateexpr

import (
	"errors"
	"fmt"
)

// Resolution errors.
var (
	// ErrNoMatch means the text has no date-shaped fragment.
	ErrNoMatch = errors.New("no date expression found")
	// ErrUnresolved means a fragment matched but no month or phrase rule applies.
	ErrUnresolved = errors.New("date expression could not be resolved")
	// ErrInvalidCalendarDate means the fields do not form a real date.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
)

// InvalidDateError reports the rejected day, month and year.
type InvalidDateError struct {
	Day   int
	Month int
	Year  int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid calendar date: %d/%d/%d", e.Day, e.Month, e.Year)
}

// Unwrap makes errors.Is(err, ErrInvalidCalendarDate) hold.
func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidCalendarDate
}

// IsNotFound reports whether err means "no date present" rather than a
// malformed date. Callers treat both cases the same way.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoMatch) || errors.Is(err, ErrUnresolved)
}
