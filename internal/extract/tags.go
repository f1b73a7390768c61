package extract

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// tagPattern needs lookbehind and lookahead, which RE2 does not support.
// A '#' right after '/' or ':' is a URL fragment, and a tag followed by '?'
// is a fragment carrying a query.
var tagPattern = regexp2.MustCompile(
	`(?<![/:])#([a-zA-Z0-9_\-.+@&!áàâãéèêíìîóòôõúùûçÁÀÂÃÉÈÊÍÌÎÓÒÔÕÚÙÛÇ]+)(?!\?)`,
	regexp2.IgnoreCase)

// DetectTags returns every hashtag in text, in order, without the '#'.
// Tags that appear as the fragment of a URL in the same text are skipped.
func DetectTags(text string) []string {
	var tags []string

	m, err := tagPattern.FindStringMatch(text)
	for err == nil && m != nil {
		tag := m.GroupByNumber(1).String()
		if !isURLFragment(text, tag) {
			tags = append(tags, tag)
		}
		m, err = tagPattern.FindNextMatch(m)
	}
	return tags
}

func isURLFragment(text, tag string) bool {
	if !strings.Contains(text, "://") {
		return false
	}
	fragment := regexp.MustCompile(`https?://\S*#` + regexp.QuoteMeta(tag))
	return fragment.MatchString(text)
}
