package config

import "strings"

// Theme names a markdown render style. The zero value renders as auto.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps a configured value onto a Theme; unknown values fall
// back to ThemeAuto.
func ParseTheme(value string) Theme {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dark":
		return ThemeDark
	case "light":
		return ThemeLight
	default:
		return ThemeAuto
	}
}

// Next returns the theme following t in the cycle auto, dark, light.
func (t Theme) Next() Theme {
	switch t {
	case ThemeAuto:
		return ThemeDark
	case ThemeDark:
		return ThemeLight
	default:
		return ThemeAuto
	}
}

func (t Theme) String() string {
	if t == "" {
		return string(ThemeAuto)
	}
	return string(t)
}
