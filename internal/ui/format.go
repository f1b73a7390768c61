package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/javiermolinar/afazeres/internal/dateutil"
	"github.com/javiermolinar/afazeres/internal/extract"
	"github.com/javiermolinar/afazeres/internal/report"
)

// parseToday parses a --today value.
func parseToday(s string) (time.Time, error) {
	t, err := dateutil.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--today %q: %w", s, err)
	}
	return t, nil
}

// printReport writes the colored report for r.
func printReport(w io.Writer, r extract.Result, layout string) {
	fmt.Fprintln(w, formatHeader(report.Header))
	for _, l := range report.Lines(r, layout) {
		fmt.Fprintln(w, formatLine(l))
	}
}

func formatLine(l report.Line) string {
	switch l.Label {
	case "":
		return formatMuted(l.Value)
	case report.LabelDate:
		return formatLabel(l.Label+":") + " " + formatDate(l.Value)
	case report.LabelInvalidDate:
		return formatWarning(l.Label + ": " + l.Value)
	default:
		return formatLabel(l.Label+":") + " " + l.Value
	}
}

// separator returns a rule as wide as the terminal, capped at max.
func separator(limit int) string {
	return formatMuted(strings.Repeat("─", min(termWidth(), limit)))
}
