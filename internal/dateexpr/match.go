// Package dateexpr recognizes Portuguese date expressions in free text and
// resolves them to calendar dates.
package dateexpr

import (
	"strconv"

	"github.com/dlclark/regexp2"
)

// Shape is the syntactic category of a matched date expression.
type Shape int

const (
	ShapeWrittenOut Shape = iota + 1 // "13 de agosto de 2021"
	ShapeNumeric                     // "20/04/2022"
	ShapeRelative                    // "amanhã", "mês que vem"
)

// String returns the shape name used in logs and JSON output.
func (s Shape) String() string {
	switch s {
	case ShapeWrittenOut:
		return "written_out"
	case ShapeNumeric:
		return "numeric"
	case ShapeRelative:
		return "relative"
	default:
		return "unknown"
	}
}

// Match is a date-shaped fragment found in a text.
// Only the fields belonging to Shape are set.
type Match struct {
	Shape Shape
	Text  string // the whole matched fragment
	Index int    // rune offset of Text in the input

	Day        int    // written-out and numeric
	MonthToken string // written-out, raw month name as typed
	Month      int    // numeric, taken literally
	Year       int    // written-out and numeric, as typed (2 or 4 digits)
	HasYear    bool
	Phrase     string // relative, raw phrase as typed
}

// Capture groups of datePattern.
const (
	groupWrittenDay = iota + 1
	groupWrittenMonth
	groupWrittenYear
	groupNumericDay
	groupNumericMonth
	groupNumericYear
	groupRelative
)

// datePattern has three alternatives tried in order at every position:
// written-out date, numeric date and relative phrase. regexp2 is used
// because its \b treats accented letters as word characters, so
// "amanhã" ends on a word boundary.
var datePattern = regexp2.MustCompile(`\b(?:`+
	`(?:([0-9]{1,2})\s*(?:de\s*)?([a-zA-ZçÇ]+)(?:\s*(?:de\s*)?([0-9]{4}|[0-9]{2}))?)`+
	`|(?:([0-9]{1,2})[/.\-]([0-9]{1,2})(?:[/.\-]([0-9]{4}|[0-9]{2}))?)`+
	`|(hoje`+
	`|amanh[aã]`+
	`|depois\s*de\s*amanh[ãa]`+
	`|pr[oó]xim[oa]s?\s*(?:dias?|semanas?|m[eê]s(?:es)?|anos?|final\s*de\s*semana)`+
	`|(?:esse|este|esta)\s*(?:final\s*de\s*semana|fim\s*de\s*semana)`+
	`|(?:semana|m[eê]s)\s*que\s*vem)`+
	`)\b`, regexp2.IgnoreCase)

// Find returns the first date expression in text, scanning left to right.
// Later date mentions are ignored.
func Find(text string) (Match, bool) {
	m, err := datePattern.FindStringMatch(text)
	if err != nil || m == nil {
		return Match{}, false
	}

	match := Match{Text: m.String(), Index: m.Index}

	switch {
	case participated(m, groupWrittenDay) && participated(m, groupWrittenMonth):
		match.Shape = ShapeWrittenOut
		match.Day = atoi(m, groupWrittenDay)
		match.MonthToken = m.GroupByNumber(groupWrittenMonth).String()
		if participated(m, groupWrittenYear) {
			match.Year = atoi(m, groupWrittenYear)
			match.HasYear = true
		}
	case participated(m, groupNumericDay) && participated(m, groupNumericMonth):
		match.Shape = ShapeNumeric
		match.Day = atoi(m, groupNumericDay)
		match.Month = atoi(m, groupNumericMonth)
		if participated(m, groupNumericYear) {
			match.Year = atoi(m, groupNumericYear)
			match.HasYear = true
		}
	case participated(m, groupRelative):
		match.Shape = ShapeRelative
		match.Phrase = m.GroupByNumber(groupRelative).String()
	default:
		return Match{}, false
	}

	return match, true
}

func participated(m *regexp2.Match, group int) bool {
	g := m.GroupByNumber(group)
	return g != nil && len(g.Captures) > 0
}

// atoi converts a digit group. The pattern only admits ASCII digits.
func atoi(m *regexp2.Match, group int) int {
	n, _ := strconv.Atoi(m.GroupByNumber(group).String())
	return n
}
