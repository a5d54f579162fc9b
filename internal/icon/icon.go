// Package icon defines the symbolic icon tags attached to portfolio data.
//
// Tags carry no rendering concerns. Each presentation layer (HTML, terminal)
// resolves a tag to its own glyph through a lookup table.
package icon

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Icon is an enumerated symbolic reference to a glyph.
type Icon int

const (
	None Icon = iota
	Scissors
	Image
	Layout
	Clapperboard
	Layers
	Frame
	PenTool
	Sparkles
	Monitor
	Code
	Terminal
	Youtube
	MessageSquare
	Facebook
	Gamepad
	Music
	Mail
	Calendar
	MapPin
	GraduationCap
	Cpu
	Wrench
	ArrowRight
	Sun
	Moon
	Menu
	X
)

var names = map[Icon]string{
	None:          "",
	Scissors:      "scissors",
	Image:         "image",
	Layout:        "layout",
	Clapperboard:  "clapperboard",
	Layers:        "layers",
	Frame:         "frame",
	PenTool:       "pen-tool",
	Sparkles:      "sparkles",
	Monitor:       "monitor",
	Code:          "code",
	Terminal:      "terminal",
	Youtube:       "youtube",
	MessageSquare: "message-square",
	Facebook:      "facebook",
	Gamepad:       "gamepad",
	Music:         "music",
	Mail:          "mail",
	Calendar:      "calendar",
	MapPin:        "map-pin",
	GraduationCap: "graduation-cap",
	Cpu:           "cpu",
	Wrench:        "wrench",
	ArrowRight:    "arrow-right",
	Sun:           "sun",
	Moon:          "moon",
	Menu:          "menu",
	X:             "x",
}

var byName = func() map[string]Icon {
	m := make(map[string]Icon, len(names))
	for i, n := range names {
		m[n] = i
	}
	return m
}()

// String returns the tag name used in content files.
func (i Icon) String() string {
	if n, ok := names[i]; ok {
		return n
	}
	return fmt.Sprintf("icon(%d)", int(i))
}

// Parse resolves a tag name. The empty string maps to None.
func Parse(s string) (Icon, error) {
	i, ok := byName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return None, fmt.Errorf("unknown icon %q", s)
	}
	return i, nil
}

// UnmarshalYAML decodes a tag name from a YAML scalar.
func (i *Icon) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*i = parsed
	return nil
}

// MarshalYAML encodes the tag name.
func (i Icon) MarshalYAML() (any, error) {
	return i.String(), nil
}
