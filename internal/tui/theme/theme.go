// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is the theme used when none is configured or the configured one is unknown.
const DefaultName = "mocha"

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Preview panel, history rows
	BgSelection string `toml:"bg_selection"` // Recalled history entry
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Labels, help line
	Accent      string `toml:"accent"`       // Title, prompt
	Date        string `toml:"date"`         // Resolved dates
	Time        string `toml:"time"`         // Clock values
	Action      string `toml:"action"`       // Detected verbs
	Link        string `toml:"link"`         // URLs and emails
	Tag         string `toml:"tag"`          // Hashtags
	Warning     string `toml:"warning"`      // Invalid dates, errors

	// Panel palette (can override base theme values)
	PanelBg     string `toml:"panel_bg"`
	PanelBorder string `toml:"panel_border"`
	TextPrimary string `toml:"text_primary"`
	TextMuted   string `toml:"text_muted"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// PanelPalette provides the preview panel colors derived from the theme.
type PanelPalette struct {
	Bg          string
	Border      string
	TextPrimary string
	TextMuted   string
}

// Panel returns the panel palette, falling back to base theme colors when needed.
func (t *Theme) Panel() PanelPalette {
	return PanelPalette{
		Bg:          coalesce(t.PanelBg, t.BgHighlight, t.Bg),
		Border:      coalesce(t.PanelBorder, t.Accent),
		TextPrimary: coalesce(t.TextPrimary, t.Fg),
		TextMuted:   coalesce(t.TextMuted, t.FgMuted),
	}
}

func (t *Theme) applyDefaults() {
	if t.PanelBg == "" {
		t.PanelBg = coalesce(t.BgHighlight, t.Bg)
	}
	if t.PanelBorder == "" {
		t.PanelBorder = t.Accent
	}
	if t.TextPrimary == "" {
		t.TextPrimary = t.Fg
	}
	if t.TextMuted == "" {
		t.TextMuted = t.FgMuted
	}
	// Field colors missing from a theme file fall back to the accent.
	t.Date = coalesce(t.Date, t.Accent)
	t.Time = coalesce(t.Time, t.Accent)
	t.Action = coalesce(t.Action, t.Accent)
	t.Link = coalesce(t.Link, t.Accent)
	t.Tag = coalesce(t.Tag, t.Accent)
	t.Warning = coalesce(t.Warning, t.Accent)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
