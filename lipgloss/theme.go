// Package lipgloss provides themes and the colorized corpus renderer using the
// Lipgloss styling library.
package lipgloss

import (
	"fmt"

	"github.com/fwojciec/diffmark"
)

// Compile-time interface verification.
var _ diffmark.Theme = (*Theme)(nil)

// Theme implements diffmark.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles diffmark.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() diffmark.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the theme for a config theme name.
func ThemeByName(name string) (*Theme, error) {
	switch name {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	}
	return nil, fmt.Errorf("unknown theme %q", name)
}

// DarkTheme returns a theme optimized for dark terminal backgrounds
// (Catppuccin Mocha).
func DarkTheme() *Theme {
	return &Theme{
		styles: diffmark.Styles{
			Pattern:   diffmark.ColorPair{Foreground: "#89b4fa"}, // Blue
			Word:      diffmark.ColorPair{Foreground: "#cdd6f4"}, // Text
			Operator:  diffmark.ColorPair{Foreground: "#f9e2af"}, // Yellow
			Escape:    diffmark.ColorPair{Foreground: "#cba6f7"}, // Mauve
			Separator: diffmark.ColorPair{Foreground: "#6c7086"}, // Overlay
			Error: diffmark.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#f38ba8", // Red
			},
			Selected: diffmark.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#a6e3a1", // Green
			},
			Muted: diffmark.ColorPair{Foreground: "#6c7086"},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds
// (Catppuccin Latte).
func LightTheme() *Theme {
	return &Theme{
		styles: diffmark.Styles{
			Pattern:   diffmark.ColorPair{Foreground: "#1e66f5"},
			Word:      diffmark.ColorPair{Foreground: "#4c4f69"},
			Operator:  diffmark.ColorPair{Foreground: "#df8e1d"},
			Escape:    diffmark.ColorPair{Foreground: "#8839ef"},
			Separator: diffmark.ColorPair{Foreground: "#9ca0b0"},
			Error: diffmark.ColorPair{
				Foreground: "#ffffff",
				Background: "#d20f39",
			},
			Selected: diffmark.ColorPair{
				Foreground: "#ffffff",
				Background: "#40a02b",
			},
			Muted: diffmark.ColorPair{Foreground: "#9ca0b0"},
		},
	}
}
