package dateexpr

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/javiermolinar/afazeres/internal/dateutil"
)

// relativeRule pairs a phrase predicate with its resolution.
type relativeRule struct {
	name    string
	matches func(phrase string) bool
	resolve func(today time.Time) time.Time
}

// relativeRules is evaluated in order and the first match wins.
// Some phrases satisfy several predicates, so the order is part of the contract.
var relativeRules = []relativeRule{
	{
		name:    "today",
		matches: anyOf(`^hoje`),
		resolve: func(today time.Time) time.Time { return today },
	},
	{
		name:    "tomorrow",
		matches: anyOf(`^amanh`),
		resolve: addDays(1),
	},
	{
		name:    "day_after_tomorrow",
		matches: anyOf(`^depois\s*de\s*amanh`),
		resolve: addDays(2),
	},
	{
		name:    "next_day",
		matches: anyOf(`^proxim[oa]\s*dia`),
		resolve: addDays(1),
	},
	{
		name:    "next_week",
		matches: anyOf(`^proxim[oa]\s*semana`, `semana\s*que\s*vem`),
		resolve: addDays(7),
	},
	{
		name:    "next_month",
		matches: anyOf(`^proxim[oa]\s*mes`, `mes\s*que\s*vem`),
		resolve: dateutil.NextMonthClamped,
	},
	{
		name:    "next_year",
		matches: anyOf(`^proxim[oa]\s*ano`),
		resolve: nextYear,
	},
	{
		name:    "next_weekend",
		matches: anyOf(`^proxim[oa]\s*(?:final|fim)\s*de\s*semana`),
		resolve: dateutil.NextWeekend,
	},
	{
		name:    "this_weekend",
		matches: anyOf(`(?:esse|este|esta)\s*(?:final|fim)\s*de\s*semana`),
		resolve: dateutil.ThisWeekend,
	},
}

func anyOf(exprs ...string) func(string) bool {
	patterns := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		patterns[i] = regexp.MustCompile(expr)
	}
	return func(phrase string) bool {
		for _, p := range patterns {
			if p.MatchString(phrase) {
				return true
			}
		}
		return false
	}
}

func addDays(n int) func(time.Time) time.Time {
	return func(today time.Time) time.Time {
		return today.AddDate(0, 0, n)
	}
}

// nextYear keeps month and day one year ahead. When that date does not
// exist (29 February into a common year) it falls back to 365 days later.
func nextYear(today time.Time) time.Time {
	if t, ok := dateutil.NewDate(today.Year()+1, int(today.Month()), today.Day(), today.Location()); ok {
		return t
	}
	return today.AddDate(0, 0, 365)
}

// foldPhrase lowercases s and strips diacritics ("Próximo Mês" -> "proximo mes").
func foldPhrase(s string) string {
	// Transformers keep state, so each call builds its own chain.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// resolveRelative applies the first rule matching phrase.
func resolveRelative(phrase string, today time.Time) (time.Time, string, bool) {
	folded := foldPhrase(phrase)
	for _, rule := range relativeRules {
		if rule.matches(folded) {
			return rule.resolve(today), rule.name, true
		}
	}
	return time.Time{}, "", false
}
