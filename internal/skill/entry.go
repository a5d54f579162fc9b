// Package skill models proficiency entries, classifies them into tiers and
// prepares them for bar-chart display.
package skill

import (
	"fmt"

	"github.com/mdashik24x7/portfolio/internal/icon"
)

// Scale bounds for Entry.Level.
const (
	MinLevel = 0
	MaxLevel = 100
)

// Entry is a named proficiency measurement.
type Entry struct {
	Name  string    `yaml:"name" json:"name"`
	Level int       `yaml:"level" json:"level"`
	Icon  icon.Icon `yaml:"icon,omitempty" json:"-"`
}

// Layout selects how a category is drawn.
type Layout string

const (
	LayoutChart Layout = "chart" // sorted horizontal bars
	LayoutGrid  Layout = "grid"  // cards with mini bars, declaration order
)

// Category groups entries under a heading.
type Category struct {
	ID          string  `yaml:"id" json:"id"`
	Title       string  `yaml:"title" json:"title"`
	Badge       string  `yaml:"badge,omitempty" json:"badge,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Layout      Layout  `yaml:"layout" json:"layout"`
	Skills      []Entry `yaml:"skills" json:"skills"`
}

// ValidationError reports a level outside [MinLevel, MaxLevel].
type ValidationError struct {
	Name  string
	Level int
}

func (e *ValidationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("skill level %d outside %d..%d", e.Level, MinLevel, MaxLevel)
	}
	return fmt.Sprintf("skill %q: level %d outside %d..%d", e.Name, e.Level, MinLevel, MaxLevel)
}

// Normalize clamps level into range. The error is non-nil (a
// *ValidationError) when clamping was needed.
func Normalize(level int) (int, error) {
	switch {
	case level < MinLevel:
		return MinLevel, &ValidationError{Level: level}
	case level > MaxLevel:
		return MaxLevel, &ValidationError{Level: level}
	}
	return level, nil
}
