package render

import (
	"fmt"
	"strings"
)

// Theme is the initial colour scheme of the page. The page can switch it at
// runtime without a round trip.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme matches the viewer's historical look.
const DefaultTheme = ThemeDark

func (t Theme) String() string {
	return string(t)
}

// BodyClass is the class set on <body> for the theme.
func (t Theme) BodyClass() string {
	return string(t) + "-theme"
}

func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// ParseTheme parses a string into a Theme
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("unsupported theme '%s': must be one of: light, dark", s)
	}
}
