package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/afazeres/internal/dateexpr"
	"github.com/javiermolinar/afazeres/internal/debuglog"
)

var errNoDate = errors.New("nenhuma data encontrada")

func (a *App) dateCmd() *cobra.Command {
	var (
		today   string
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "date [text...]",
		Short: "Resolve only the date mentioned in text",
		Long: `Find the first date expression in the text and print the calendar date.

Fails when no date is found or when it names an impossible day.

Examples:
  afazeres date "mês que vem"
  afazeres date --today=2024-01-31 --explain "próximo mês"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := a.today(today)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			date, m, err := dateexpr.Parse(text, ref)
			debuglog.L().Debug("date",
				zap.String("text", text),
				zap.Stringer("shape", m.Shape),
				zap.Time("date", date),
				zap.Error(err),
			)
			switch {
			case dateexpr.IsNotFound(err):
				return errNoDate
			case err != nil:
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, date.Format(a.config.Output.DateFormat))
			if explain {
				fmt.Fprintln(out, formatMuted(describeMatch(m)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&today, "today", "", "Reference date (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show which expression produced the date")

	return cmd
}

// describeMatch explains how a match was read.
func describeMatch(m dateexpr.Match) string {
	desc := fmt.Sprintf("%q (%s)", m.Text, m.Shape)
	if m.Shape == dateexpr.ShapeRelative {
		desc += " rule " + dateexpr.RuleName(m.Phrase)
	}
	return desc
}
