// Package styles holds the lipgloss styles shared by the TUI views.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colours the views draw with. Each colour adapts
// to light and dark terminal backgrounds.
type Palette struct {
	Accent lipgloss.AdaptiveColor
	Link   lipgloss.AdaptiveColor
	Text   lipgloss.AdaptiveColor
	Dim    lipgloss.AdaptiveColor
	Good   lipgloss.AdaptiveColor
	Bad    lipgloss.AdaptiveColor
	Star   lipgloss.AdaptiveColor
	Rule   lipgloss.AdaptiveColor
	Bar    lipgloss.AdaptiveColor
}

// DefaultPalette is a purple/cyan palette with a peach star colour.
var DefaultPalette = Palette{
	Accent: lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"},
	Link:   lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#67E8F9"},
	Text:   lipgloss.AdaptiveColor{Light: "#1E1E2E", Dark: "#CDD6F4"},
	Dim:    lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#7F849C"},
	Good:   lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#A6E3A1"},
	Bad:    lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F38BA8"},
	Star:   lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FAB387"},
	Rule:   lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#45475A"},
	Bar:    lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#181825"},
}

// Styles are the rendered styles, one per kind of text on screen.
type Styles struct {
	Header    lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Name      lipgloss.Style
	Stars     lipgloss.Style
	Owner     lipgloss.Style
	Link      lipgloss.Style
	StatusBar lipgloss.Style
	Help      lipgloss.Style
}

// FromPalette builds the styles for p.
func FromPalette(p Palette) *Styles {
	fg := func(c lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	return &Styles{
		Header: fg(p.Accent).Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Rule),
		Title:     fg(p.Accent).Bold(true),
		Subtitle:  fg(p.Link).Bold(true),
		Normal:    fg(p.Text),
		Muted:     fg(p.Dim),
		Selected:  fg(p.Text).Background(p.Accent).Bold(true),
		Error:     fg(p.Bad),
		Success:   fg(p.Good),
		Name:      fg(p.Link).Bold(true),
		Stars:     fg(p.Star),
		Owner:     fg(p.Dim).Italic(true),
		Link:      fg(p.Link).Underline(true),
		StatusBar: fg(p.Dim).Background(p.Bar).Padding(0, 1),
		Help:      fg(p.Dim),
	}
}

// DefaultStyles returns the styles for DefaultPalette.
func DefaultStyles() *Styles {
	return FromPalette(DefaultPalette)
}
