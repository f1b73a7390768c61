// Package extract pulls structured fields out of a free-form task line:
// date, time of day, action verb, URL, email and hashtags.
package extract

import (
	"errors"
	"time"

	"github.com/javiermolinar/afazeres/internal/dateexpr"
)

// Result holds everything found in one text. Each field is set independently.
type Result struct {
	Text string

	Date      time.Time       // zero when no date was resolved
	DateMatch *dateexpr.Match // the fragment that produced Date or DateErr
	// DateErr is set when the fragment names an impossible calendar day
	// ("30/02/2023"). It is reported but does not count as a date.
	DateErr *dateexpr.InvalidDateError

	Time   *Clock
	Action string
	URL    string
	Email  string
	Tags   []string
}

// HasDate reports whether a calendar date was resolved.
func (r Result) HasDate() bool {
	return !r.Date.IsZero()
}

// Empty reports whether nothing relevant was found.
func (r Result) Empty() bool {
	return !r.HasDate() &&
		r.Time == nil &&
		r.Action == "" &&
		r.URL == "" &&
		r.Email == "" &&
		len(r.Tags) == 0
}

// Extract runs every detector over text. today anchors relative dates and
// supplies the year when a date omits it.
func Extract(text string, today time.Time) Result {
	r := Result{Text: text}

	date, m, err := dateexpr.Parse(text, today)
	if m.Shape != 0 {
		r.DateMatch = &m
	}
	var invalid *dateexpr.InvalidDateError
	switch {
	case err == nil:
		r.Date = date
	case errors.As(err, &invalid):
		r.DateErr = invalid
	}

	if c, ok := DetectTime(text); ok {
		r.Time = &c
	}
	r.Action, _ = DetectAction(text)
	r.URL, _ = DetectURL(text)
	r.Email, _ = DetectEmail(text)
	r.Tags = DetectTags(text)

	return r
}
