package dateexpr

import "strings"

type monthEntry struct {
	name  string
	month int
}

// monthTable lists month names and abbreviations. Order matters: the
// prefix fallback in LookupMonth takes the first compatible entry.
var monthTable = []monthEntry{
	{"janeiro", 1}, {"jan", 1},
	{"fevereiro", 2}, {"fev", 2},
	{"marco", 3}, {"março", 3}, {"mar", 3},
	{"abril", 4}, {"abr", 4},
	{"maio", 5}, {"mai", 5},
	{"junho", 6}, {"jun", 6},
	{"julho", 7}, {"jul", 7},
	{"agosto", 8}, {"ago", 8},
	{"setembro", 9}, {"set", 9},
	{"outubro", 10}, {"out", 10},
	{"novembro", 11}, {"nov", 11},
	{"dezembro", 12}, {"dez", 12},
}

var monthIndex = func() map[string]int {
	idx := make(map[string]int, len(monthTable))
	for _, e := range monthTable {
		idx[e.name] = e.month
	}
	return idx
}()

var cedillaReplacer = strings.NewReplacer("ç", "c")

// normalizeMonthToken lowercases a month token and folds "ç" to "c".
func normalizeMonthToken(token string) string {
	return cedillaReplacer.Replace(strings.ToLower(token))
}

// LookupMonth maps a month name as typed to 1-12.
// An exact table hit wins; otherwise the first entry where either string
// is a prefix of the other is used ("agost" and "setembrooo" both resolve).
func LookupMonth(token string) (int, bool) {
	name := normalizeMonthToken(token)
	if name == "" {
		return 0, false
	}
	if month, ok := monthIndex[name]; ok {
		return month, true
	}
	for _, e := range monthTable {
		if strings.HasPrefix(name, e.name) || strings.HasPrefix(e.name, name) {
			return e.month, true
		}
	}
	return 0, false
}
