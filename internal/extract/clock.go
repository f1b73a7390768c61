package extract

import (
	"fmt"
	"regexp"
	"strconv"
)

// Clock is a time of day.
type Clock struct {
	Hour   int
	Minute int
}

// String formats the clock as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// clockPattern accepts "10:30", "10 30", "às 10", "as 20 horas".
var clockPattern = regexp.MustCompile(`(?i)(?:(?:[àa]s|as)\s*)?([0-9]{1,2})\s*[: ]?\s*([0-9]{2})?\s*(?:horas?)?`)

// DetectTime returns the time of day mentioned in text.
// Only the first number-shaped fragment is considered; if it is out of range
// ("30/02" gives hour 30) there is no time.
func DetectTime(text string) (Clock, bool) {
	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return Clock{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour > 23 || minute > 59 {
		return Clock{}, false
	}
	return Clock{Hour: hour, Minute: minute}, true
}
