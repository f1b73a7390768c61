package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/afazeres/internal/report"
	"github.com/javiermolinar/afazeres/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Title bar
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style

	// Input line
	PromptStyle      lipgloss.Style
	InputTextStyle   lipgloss.Style
	PlaceholderStyle lipgloss.Style
	CursorStyle      lipgloss.Style

	// Preview panel
	PanelStyle       lipgloss.Style
	PanelHeaderStyle lipgloss.Style
	ValueStyle       lipgloss.Style
	NothingStyle     lipgloss.Style

	// History list
	HistoryRowStyle    lipgloss.Style
	HistoryRowAltStyle lipgloss.Style
	HistoryRecallStyle lipgloss.Style
	HistoryDateStyle   lipgloss.Style

	// Footer
	HelpStyle   lipgloss.Style
	StatusStyle lipgloss.Style

	labels map[string]labelStyle
}

// labelStyle renders the chip and value of one report line.
type labelStyle struct {
	chip  lipgloss.Style
	value lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	s := &Styles{palette: p}

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextOnAccent).
		Background(p.Accent).
		Padding(0, 1)
	s.SubtitleStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		PaddingLeft(1)

	s.PromptStyle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	s.InputTextStyle = lipgloss.NewStyle().Foreground(p.Fg)
	s.PlaceholderStyle = lipgloss.NewStyle().Foreground(p.FgMuted).Italic(true)
	s.CursorStyle = lipgloss.NewStyle().Foreground(p.Accent)

	s.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Panel.Border).
		Padding(0, 1)
	s.PanelHeaderStyle = lipgloss.NewStyle().Foreground(p.Panel.Muted).Bold(true)
	s.ValueStyle = lipgloss.NewStyle().Foreground(p.Panel.Text)
	s.NothingStyle = lipgloss.NewStyle().Foreground(p.Panel.Muted).Italic(true)

	s.HistoryRowStyle = lipgloss.NewStyle().Foreground(p.Fg).Background(p.HistoryBg)
	s.HistoryRowAltStyle = lipgloss.NewStyle().Foreground(p.Fg).Background(p.HistoryBgAlt)
	s.HistoryRecallStyle = lipgloss.NewStyle().Foreground(p.Fg).Background(p.BgSelection).Bold(true)
	s.HistoryDateStyle = lipgloss.NewStyle().Foreground(p.Date.Muted)

	s.HelpStyle = lipgloss.NewStyle().Foreground(p.FgMuted)
	s.StatusStyle = lipgloss.NewStyle().Foreground(p.Warning.Fg)

	s.labels = map[string]labelStyle{
		report.LabelDate:        newLabelStyle(p.Date),
		report.LabelInvalidDate: newLabelStyle(p.Warning),
		report.LabelTime:        newLabelStyle(p.Time),
		report.LabelAction:      newLabelStyle(p.Action),
		report.LabelURL:         newLabelStyle(p.Link),
		report.LabelEmail:       newLabelStyle(p.Link),
		report.LabelTags:        newLabelStyle(p.Tag),
	}

	return s
}

func newLabelStyle(c theme.FieldColors) labelStyle {
	return labelStyle{
		chip: lipgloss.NewStyle().
			Foreground(c.ChipText).
			Background(c.Chip).
			Padding(0, 1),
		value: lipgloss.NewStyle().Foreground(c.Fg),
	}
}

// RenderLine renders one report line with its colored label chip.
// labelWidth pads chips so values line up.
func (s *Styles) RenderLine(l report.Line, labelWidth int) string {
	if l.Label == "" {
		return s.NothingStyle.Render(l.Value)
	}
	ls, ok := s.labels[l.Label]
	if !ok {
		return s.ValueStyle.Render(l.String())
	}
	chip := ls.chip.Width(labelWidth + 2).Render(l.Label)
	return chip + " " + ls.value.Render(l.Value)
}
