package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/afazeres/internal/report"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	title         = "afazeres"
	helpText      = "enter salvar · ↑/↓ histórico · ctrl+y copiar · ctrl+l limpar · esc sair"
)

// View renders the TUI.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	height := m.height
	if height <= 0 {
		height = defaultHeight
	}

	var sections []string
	sections = append(sections, m.renderTitle(width))
	sections = append(sections, m.input.View())
	preview := m.renderPreview(width)
	sections = append(sections, preview)

	footer := m.renderFooter(width)
	used := lipgloss.Height(strings.Join(sections, "\n")) + lipgloss.Height(footer) + 1
	if history := m.renderHistory(width, height-used); history != "" {
		sections = append(sections, history)
	}
	sections = append(sections, footer)

	return strings.Join(sections, "\n")
}

func (m Model) renderTitle(width int) string {
	today := m.nowFunc().Format(m.dateLayout())
	line := m.styles.TitleStyle.Render(title) + m.styles.SubtitleStyle.Render("hoje: "+today)
	return ansi.Truncate(line, width, "")
}

// renderPreview renders the report of the current input inside a panel.
func (m Model) renderPreview(width int) string {
	lines := report.Lines(m.preview, m.dateLayout())

	labelWidth := 0
	for _, l := range lines {
		labelWidth = max(labelWidth, lipgloss.Width(l.Label))
	}

	inner := max(width-4, 10)
	rendered := []string{m.styles.PanelHeaderStyle.Render(report.Header)}
	for _, l := range lines {
		rendered = append(rendered, ansi.Truncate(m.styles.RenderLine(l, labelWidth), inner, "…"))
	}

	return m.styles.PanelStyle.Width(width - 2).Render(strings.Join(rendered, "\n"))
}

// renderHistory lists saved entries, newest first, within maxLines.
func (m Model) renderHistory(width, maxLines int) string {
	if len(m.history) == 0 || maxLines < 2 {
		return ""
	}

	rows := []string{m.styles.PanelHeaderStyle.Render("Histórico")}
	shown := 0
	for i := len(m.history) - 1; i >= 0 && shown < maxLines-1; i-- {
		rows = append(rows, m.renderHistoryRow(i, width))
		shown++
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderHistoryRow(i, width int) string {
	e := m.history[i]

	prefix := "          "
	if e.result.HasDate() {
		prefix = e.result.Date.Format(m.dateLayout())
	} else if e.result.DateErr != nil {
		prefix = "inválida"
	}
	prefix = m.styles.HistoryDateStyle.Render(padRight(prefix, 10))

	style := m.styles.HistoryRowStyle
	switch {
	case i == m.recall:
		style = m.styles.HistoryRecallStyle
	case (len(m.history)-1-i)%2 == 1:
		style = m.styles.HistoryRowAltStyle
	}

	text := ansi.Truncate(e.result.Text, max(width-12, 1), "…")
	return prefix + " " + style.Width(max(width-11, 1)).Render(text)
}

func (m Model) renderFooter(width int) string {
	if m.statusMsg != "" {
		return ansi.Truncate(m.styles.StatusStyle.Render(m.statusMsg), width, "…")
	}
	return ansi.Truncate(m.styles.HelpStyle.Render(helpText), width, "…")
}

func padRight(s string, n int) string {
	if w := ansi.StringWidth(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
