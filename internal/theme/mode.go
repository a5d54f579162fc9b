// Package theme holds the light/dark theme state shared by every visual
// component, the palette derived from it, and the key-value stores the
// preference is persisted to.
package theme

import (
	"fmt"
	"strings"
)

// Mode is the active color scheme.
type Mode bool

const (
	Light Mode = false
	Dark  Mode = true
)

// PreferenceKey is the key the mode is persisted under.
const PreferenceKey = "theme"

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	return !m
}

// ParseMode accepts the persisted values "dark" and "light".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("invalid theme %q", s)
}

// Pick returns dark when m is Dark and light otherwise.
func Pick[T any](m Mode, light, dark T) T {
	if m == Dark {
		return dark
	}
	return light
}
