package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/emmabritton/countup/internal/countup"
)

// Theme maps render-model style roles to terminal styles.
type Theme struct {
	Heading    lipgloss.Style
	Value      lipgloss.Style
	Unit       lipgloss.Style
	Connective lipgloss.Style
	Background lipgloss.Style
	Help       lipgloss.Style
}

// themes holds the built-in palettes. "default" matches the original widget:
// light gray text and white numbers on dark gray.
var themes = map[string]func() Theme{
	"default": func() Theme {
		var (
			darkGray  = lipgloss.Color("#404040")
			lightGray = lipgloss.Color("#B8B8B8")
			white     = lipgloss.Color("#FFFFFF")
		)
		return Theme{
			Heading:    lipgloss.NewStyle().Background(darkGray).Foreground(lightGray),
			Value:      lipgloss.NewStyle().Background(darkGray).Foreground(white).Bold(true),
			Unit:       lipgloss.NewStyle().Background(darkGray).Foreground(lightGray),
			Connective: lipgloss.NewStyle().Background(darkGray).Foreground(lightGray).Faint(true),
			Background: lipgloss.NewStyle().Background(darkGray),
			Help:       lipgloss.NewStyle().Foreground(lightGray).Faint(true),
		}
	},
	"plain": func() Theme {
		return Theme{
			Heading:    lipgloss.NewStyle(),
			Value:      lipgloss.NewStyle().Bold(true),
			Unit:       lipgloss.NewStyle(),
			Connective: lipgloss.NewStyle().Faint(true),
			Background: lipgloss.NewStyle(),
			Help:       lipgloss.NewStyle().Faint(true),
		}
	},
}

// LoadTheme returns the named theme, falling back to the default palette for
// unknown names.
func LoadTheme(name string) Theme {
	if build, ok := themes[name]; ok {
		return build()
	}
	return themes[countup.DefaultTheme]()
}

// styleFor resolves a render-model role against the theme.
func (t Theme) styleFor(role countup.StyleRole) lipgloss.Style {
	switch role {
	case countup.StyleValue:
		return t.Value
	case countup.StyleUnit:
		return t.Unit
	case countup.StyleConnective:
		return t.Connective
	default:
		return t.Heading
	}
}
