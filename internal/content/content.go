// Package content holds the portfolio's static data tables.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mdashik24x7/portfolio/internal/icon"
	"github.com/mdashik24x7/portfolio/internal/skill"
)

//go:embed portfolio.yaml
var defaultTables []byte

var (
	ErrDuplicateSkill    = errors.New("duplicate skill name")
	ErrDuplicateCategory = errors.New("duplicate category id")
)

type Link struct {
	Name string    `yaml:"name"`
	Icon icon.Icon `yaml:"icon"`
	URL  string    `yaml:"url"`
}

type Profile struct {
	Name         string `yaml:"name"`
	Handle       string `yaml:"handle"`
	HandleSuffix string `yaml:"handle_suffix"`
	DOB          string `yaml:"dob"`
	Address      string `yaml:"address"`
	Batch        string `yaml:"batch"`
	Bio          string `yaml:"bio"`
	Email        string `yaml:"email"`
	Socials      []Link `yaml:"socials"`
}

// ShortName is the last word of the full name, used in the hero banner.
func (p Profile) ShortName() string {
	f := strings.Fields(p.Name)
	if len(f) == 0 {
		return ""
	}
	return f[len(f)-1]
}

type Badge struct {
	Name string    `yaml:"name"`
	Icon icon.Icon `yaml:"icon"`
}

type System struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Skills  []string `yaml:"skills"`
}

type Interest struct {
	Name        string    `yaml:"name"`
	Icon        icon.Icon `yaml:"icon"`
	Description string    `yaml:"description"`
}

type Footer struct {
	Year   int    `yaml:"year"`
	Credit string `yaml:"credit"`
}

// Tables is the full set of portfolio data.
type Tables struct {
	Profile    Profile          `yaml:"profile"`
	Roles      []Badge          `yaml:"roles"`
	System     System           `yaml:"system"`
	Categories []skill.Category `yaml:"categories"`
	Interests  []Interest       `yaml:"interests"`
	Footer     Footer           `yaml:"footer"`
}

// Category looks a category up by id.
func (t *Tables) Category(id string) (skill.Category, bool) {
	for _, c := range t.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return skill.Category{}, false
}

// Load parses the embedded tables.
func Load() (*Tables, error) {
	return Parse(defaultTables)
}

// LoadFile parses tables from path. An empty path loads the embedded tables.
func LoadFile(path string) (*Tables, error) {
	if path == "" {
		return Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates tables. Levels are not range-checked here;
// the chart renderer clamps them.
func Parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing tables: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks category ids and per-category skill name uniqueness.
func (t *Tables) Validate() error {
	ids := make(map[string]bool, len(t.Categories))
	for i := range t.Categories {
		c := &t.Categories[i]
		if c.ID == "" {
			return fmt.Errorf("category %q: missing id", c.Title)
		}
		if ids[c.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateCategory, c.ID)
		}
		ids[c.ID] = true

		switch c.Layout {
		case "":
			c.Layout = skill.LayoutChart
		case skill.LayoutChart, skill.LayoutGrid:
		default:
			return fmt.Errorf("category %s: unknown layout %q", c.ID, c.Layout)
		}

		seen := make(map[string]bool, len(c.Skills))
		for _, s := range c.Skills {
			if seen[s.Name] {
				return fmt.Errorf("category %s: %w: %s", c.ID, ErrDuplicateSkill, s.Name)
			}
			seen[s.Name] = true
		}
	}
	return nil
}
