// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette of the player.
type Theme struct {
	Accent    lipgloss.Color // focused panels, now playing
	AccentAlt lipgloss.Color // header gradient end, genre tags

	Fg       lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Info  lipgloss.Color
	Error lipgloss.Color

	styles *Styles
}

// Styles are the pre-built styles derived from a Theme.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Genre   lipgloss.Style
	Playing lipgloss.Style
	Cursor  lipgloss.Style
	Info    lipgloss.Style
	Error   lipgloss.Style
	Panel   lipgloss.Style
	Focused lipgloss.Style
}

var defaultTheme = Theme{
	Accent:    lipgloss.Color("#38bdf8"),
	AccentAlt: lipgloss.Color("#c084fc"),

	Fg:       lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5f5f5f"),

	BgCursor: lipgloss.Color("#2e3440"),

	Border:      lipgloss.Color("#4e4e4e"),
	BorderFocus: lipgloss.Color("#38bdf8"),

	Info:  lipgloss.Color("#4ade80"),
	Error: lipgloss.Color("#f87171"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the styles of the theme, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.build()
	}
	return t.styles
}

func (t *Theme) build() *Styles {
	base := lipgloss.NewStyle().Foreground(t.Fg)
	panel := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Genre:   lipgloss.NewStyle().Foreground(t.AccentAlt),
		Playing: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Cursor:  lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.Fg),
		Info:    lipgloss.NewStyle().Foreground(t.Info),
		Error:   lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		Panel:   panel,
		Focused: panel.BorderForeground(t.BorderFocus),
	}
}

// PanelStyle returns the bordered panel style for the given focus state.
func PanelStyle(focused bool) lipgloss.Style {
	if focused {
		return T().S().Focused
	}
	return T().S().Panel
}
