package extract

import "regexp"

var (
	urlPattern   = regexp.MustCompile(`(?i)https?://[\w\-.]+(?:/[\w\-./]*)*(?:\?[^#\s]*)?(?:#\S*)?`)
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9]+[\w\-.]*[a-zA-Z0-9]+@[a-zA-Z0-9]+[\w\-.]*[a-zA-Z0-9]+(?:\.[a-zA-Z0-9]+)+`)
)

// DetectURL returns the first http(s) URL in text, including query and fragment.
func DetectURL(text string) (string, bool) {
	u := urlPattern.FindString(text)
	return u, u != ""
}

// DetectEmail returns the first email address in text.
func DetectEmail(text string) (string, bool) {
	e := emailPattern.FindString(text)
	return e, e != ""
}
