// Package theme defines color themes for the runway TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name        string
	Background  lipgloss.Color // Main app background
	Surface     lipgloss.Color // Card/panel backgrounds
	Border      lipgloss.Color // Subtle borders
	TextDim     lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted   lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary lipgloss.Color // Primary content text
	Accent      lipgloss.Color // Primary accent (active tab, focus)
	Green       lipgloss.Color // Inflows, healthy balance
	Red         lipgloss.Color // Outflows, negative balance
	Blue        lipgloss.Color
	Yellow      lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:        "flexoki-dark",
	Background:  lipgloss.Color("#100F0F"),
	Surface:     lipgloss.Color("#1C1B1A"),
	Border:      lipgloss.Color("#403E3C"),
	TextDim:     lipgloss.Color("#575653"),
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#3AA99F"),
	Green:       lipgloss.Color("#879A39"),
	Red:         lipgloss.Color("#D14D41"),
	Blue:        lipgloss.Color("#4385BE"),
	Yellow:      lipgloss.Color("#D0A215"),
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:        "catppuccin-mocha",
	Background:  lipgloss.Color("#1E1E2E"),
	Surface:     lipgloss.Color("#313244"),
	Border:      lipgloss.Color("#585B70"),
	TextDim:     lipgloss.Color("#6C7086"),
	TextMuted:   lipgloss.Color("#A6ADC8"),
	TextPrimary: lipgloss.Color("#CDD6F4"),
	Accent:      lipgloss.Color("#89B4FA"),
	Green:       lipgloss.Color("#A6E3A1"),
	Red:         lipgloss.Color("#F38BA8"),
	Blue:        lipgloss.Color("#89DCEB"),
	Yellow:      lipgloss.Color("#F9E2AF"),
}

// All lists the available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha}

// Set activates the theme with the given name, defaulting to FlexokiDark.
func Set(name string) {
	for _, t := range All {
		if t.Name == name {
			Active = t
			return
		}
	}
	Active = FlexokiDark
}
