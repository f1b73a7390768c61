package ui

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/afazeres/internal/debuglog"
	"github.com/javiermolinar/afazeres/internal/extract"
	"github.com/javiermolinar/afazeres/internal/report"
)

var errNoInput = errors.New("no text to extract from")

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type extractOpts struct {
	today   string
	json    bool
	noColor bool
	copy    bool
}

func (a *App) extractCmd() *cobra.Command {
	var opts extractOpts

	cmd := &cobra.Command{
		Use:   "extract [text...]",
		Short: "Extract date, time, action, links and tags from text",
		Long: `Extract structured information from a Portuguese task line.

The arguments form a single text. Without arguments, every non-empty
line read from stdin is processed on its own.

Examples:
  afazeres extract "Amanhã vou caminhar as 10 #lazer"
  afazeres extract --today=2024-03-14 "próximo final de semana"
  cat tarefas.txt | afazeres extract --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.noColor {
				DisableColor()
			}
			today, err := a.today(opts.today)
			if err != nil {
				return err
			}

			texts, err := readTexts(cmd, args)
			if err != nil {
				return err
			}

			results := make([]extract.Result, len(texts))
			for i, text := range texts {
				results[i] = extract.Extract(text, today)
				debuglog.LogExtract("cli", results[i])
			}

			out := cmd.OutOrStdout()
			if opts.json {
				if err := writeJSON(out, results); err != nil {
					return err
				}
			} else {
				writeReports(out, results, a.config.Output.DateFormat)
			}

			if opts.copy {
				return a.copyReports(cmd, results, opts.json)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.today, "today", "", "Reference date (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print one JSON object per text")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the output to the clipboard")

	return cmd
}

// readTexts returns the texts to process: the joined arguments, or one per
// non-empty stdin line.
func readTexts(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	if stdinIsTerminal() {
		fmt.Fprintln(cmd.ErrOrStderr(), formatMuted("Digite um texto por linha (Ctrl+D para terminar):"))
	}

	var texts []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			texts = append(texts, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(texts) == 0 {
		return nil, errNoInput
	}
	return texts, nil
}

func writeReports(w io.Writer, results []extract.Result, layout string) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w, separator(40))
		}
		printReport(w, r, layout)
	}
}

func writeJSON(w io.Writer, results []extract.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range results {
		if err := enc.Encode(report.NewView(r)); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	}
	return nil
}

// copyReports copies the uncolored output to the clipboard.
func (a *App) copyReports(cmd *cobra.Command, results []extract.Result, asJSON bool) error {
	var b strings.Builder
	if asJSON {
		if err := writeJSON(&b, results); err != nil {
			return err
		}
	} else {
		for i, r := range results {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(report.Text(r, a.config.Output.DateFormat))
		}
	}

	if err := copyToClipboard(b.String()); err != nil {
		debuglog.LogError("clipboard", err)
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), formatMuted("Copiado para a área de transferência."))
	return nil
}

