// Package report renders extraction results as the labelled lines shown to
// users and as a JSON view for machine consumers.
package report

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/afazeres/internal/dateexpr"
	"github.com/javiermolinar/afazeres/internal/dateutil"
	"github.com/javiermolinar/afazeres/internal/extract"
)

// DefaultDateLayout renders dates as dd/mm/yyyy.
const DefaultDateLayout = "02/01/2006"

// Header opens every report.
const Header = "Saída:"

// NothingFound is printed when no field was extracted.
const NothingFound = "Nenhuma informação relevante encontrada."

// Labels used in report lines.
const (
	LabelDate        = "Data"
	LabelInvalidDate = "Data inválida"
	LabelTime        = "Horário"
	LabelAction      = "Ação"
	LabelURL         = "URL"
	LabelEmail       = "Email"
	LabelTags        = "Tags"
)

// Line is one report line. A line without label is a plain message.
type Line struct {
	Label string
	Value string
}

func (l Line) String() string {
	if l.Label == "" {
		return l.Value
	}
	return l.Label + ": " + l.Value
}

// Lines returns the report lines for r, without the header.
// layout formats the resolved date; empty means DefaultDateLayout.
func Lines(r extract.Result, layout string) []Line {
	if layout == "" {
		layout = DefaultDateLayout
	}

	var lines []Line
	switch {
	case r.HasDate():
		lines = append(lines, Line{LabelDate, r.Date.Format(layout)})
	case r.DateErr != nil:
		d := r.DateErr
		lines = append(lines, Line{LabelInvalidDate, fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year)})
	}
	if r.Time != nil {
		lines = append(lines, Line{LabelTime, r.Time.String()})
	}
	if r.Action != "" {
		lines = append(lines, Line{LabelAction, r.Action})
	}
	if r.URL != "" {
		lines = append(lines, Line{LabelURL, r.URL})
	}
	if r.Email != "" {
		lines = append(lines, Line{LabelEmail, r.Email})
	}
	if len(r.Tags) > 0 {
		lines = append(lines, Line{LabelTags, strings.Join(r.Tags, ", ")})
	}
	if r.Empty() {
		lines = append(lines, Line{Value: NothingFound})
	}
	return lines
}

// Text renders the full plain-text report, header included.
func Text(r extract.Result, layout string) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, l := range Lines(r, layout) {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// InvalidDate is the rejected day/month/year triple.
type InvalidDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// View is the JSON form of a result. Dates use YYYY-MM-DD.
type View struct {
	Text        string       `json:"text"`
	Date        string       `json:"date,omitempty"`
	DateText    string       `json:"date_text,omitempty"`
	DateShape   string       `json:"date_shape,omitempty"`
	DateRule    string       `json:"date_rule,omitempty"`
	InvalidDate *InvalidDate `json:"invalid_date,omitempty"`
	Time        string       `json:"time,omitempty"`
	Action      string       `json:"action,omitempty"`
	URL         string       `json:"url,omitempty"`
	Email       string       `json:"email,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Empty       bool         `json:"empty"`
}

// NewView converts a result into its JSON form.
func NewView(r extract.Result) View {
	v := View{
		Text:   r.Text,
		Action: r.Action,
		URL:    r.URL,
		Email:  r.Email,
		Tags:   r.Tags,
		Empty:  r.Empty(),
	}
	if r.HasDate() {
		v.Date = r.Date.Format(dateutil.DateLayout)
	}
	if m := r.DateMatch; m != nil {
		v.DateText = m.Text
		v.DateShape = m.Shape.String()
		if m.Shape == dateexpr.ShapeRelative {
			v.DateRule = dateexpr.RuleName(m.Phrase)
		}
	}
	if d := r.DateErr; d != nil {
		v.InvalidDate = &InvalidDate{Day: d.Day, Month: d.Month, Year: d.Year}
	}
	if r.Time != nil {
		v.Time = r.Time.String()
	}
	return v
}
