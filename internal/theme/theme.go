// Package theme holds the light/dark preference flag.
package theme

import "strings"

// Theme is the value of the body's data-theme attribute.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	Default = Light
)

// Key is the preference and cookie name the theme is stored under.
const Key = "theme"

// Parse reads a stored value, falling back to Default for anything unknown.
func Parse(s string) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark
	case Light:
		return Light
	}
	return Default
}

// Valid reports whether s names a theme.
func Valid(s string) bool {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	return t == Light || t == Dark
}

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Icon is the Remix icon class shown on the toggle button: a sun while dark,
// a moon while light.
func (t Theme) Icon() string {
	if t == Dark {
		return "ri-sun-fill"
	}
	return "ri-moon-fill"
}

func (t Theme) String() string {
	return string(t)
}
