// Package tui provides the interactive extractor for afazeres.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/afazeres/internal/config"
	"github.com/javiermolinar/afazeres/internal/extract"
	"github.com/javiermolinar/afazeres/internal/report"
	"github.com/javiermolinar/afazeres/internal/tui/theme"
)

// maxHistory bounds the number of saved entries.
const maxHistory = 100

// entry is one line saved with Enter.
type entry struct {
	result extract.Result
	saved  time.Time
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config  *config.Config
	nowFunc func() time.Time

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	input   textinput.Model
	preview extract.Result // extraction of the current input
	history []entry        // newest last
	recall  int            // history index recalled with up/down, -1 when editing fresh text

	// Terminal dimensions
	width  int
	height int

	// Status bar
	statusMsg  string
	statusTime time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithNow sets the clock used as "today" for date resolution.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.nowFunc = now
		}
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "Amanhã às 10:30 ligar para contato@exemplo.com #trabalho"
	ti.CharLimit = 512
	ti.Prompt = "› "
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = styles.InputTextStyle
	ti.PlaceholderStyle = styles.PlaceholderStyle
	ti.Cursor.Style = styles.CursorStyle
	ti.Focus()

	m := Model{
		config:  cfg,
		nowFunc: time.Now,
		theme:   t,
		styles:  styles,
		input:   ti,
		recall:  -1,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refreshPreview()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// dateLayout returns the configured output layout.
func (m Model) dateLayout() string {
	if m.config.Output.DateFormat != "" {
		return m.config.Output.DateFormat
	}
	return report.DefaultDateLayout
}

// refreshPreview re-runs the extraction for the current input.
func (m *Model) refreshPreview() {
	m.preview = extract.Extract(m.input.Value(), m.nowFunc())
}

// Run starts the TUI.
func Run(cfg *config.Config, now func() time.Time) error {
	model := New(cfg, WithNow(now))
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
