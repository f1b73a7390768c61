package extract

import "github.com/dlclark/regexp2"

// actionPattern finds the first infinitive-looking word. regexp2 is used for
// its Unicode \b: "Amanhã" must not yield the word "Amanh".
var actionPattern = regexp2.MustCompile(`\b[A-Za-z]+(?:ar|er|ir|or|ur)\b`, regexp2.IgnoreCase)

// DetectAction returns the first word that ends like a Portuguese infinitive.
func DetectAction(text string) (string, bool) {
	m, err := actionPattern.FindStringMatch(text)
	if err != nil || m == nil {
		return "", false
	}
	return m.String(), true
}
