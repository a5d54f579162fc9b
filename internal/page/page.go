// Package page composes the single-page portfolio into a render tree.
//
// Compose is a pure function of the content tables and the theme mode; the
// resulting Page holds no mutable state and is thrown away after rendering.
package page

import (
	"log/slog"
	"strings"

	"github.com/mdashik24x7/portfolio/internal/content"
	"github.com/mdashik24x7/portfolio/internal/skill"
	"github.com/mdashik24x7/portfolio/internal/theme"
)

// Landmark identifiers, in page order.
const (
	Home      = "home"
	About     = "about"
	Skills    = "skills"
	Interests = "interests"
	Contact   = "contact"
)

// NavLink is an entry in the navigation bar.
type NavLink struct {
	Label string
	Href  string
}

// Section is a page landmark.
type Section struct {
	ID    string
	Title string
}

// Anchor is the fragment link to the section.
func (s Section) Anchor() string { return "#" + s.ID }

// SkillPanel is one rendered category.
type SkillPanel struct {
	Category skill.Category
	Chart    skill.Chart
}

// Grid reports whether the panel draws cards instead of a bar chart.
func (p SkillPanel) Grid() bool { return p.Category.Layout == skill.LayoutGrid }

// Page is the composed render tree.
type Page struct {
	Mode     theme.Mode
	Palette  theme.Palette
	Nav      []NavLink
	Sections []Section
	Tables   *content.Tables

	// Panels split into the two skill columns.
	Left, Right []SkillPanel
}

// Compose builds the page for mode.
func Compose(tables *content.Tables, mode theme.Mode, logger *slog.Logger) Page {
	pal := theme.PaletteFor(mode)
	p := Page{
		Mode:    mode,
		Palette: pal,
		Tables:  tables,
		Sections: []Section{
			{ID: Home, Title: "Home"},
			{ID: About, Title: "About"},
			{ID: Skills, Title: "Skills"},
			{ID: Interests, Title: "Interests"},
			{ID: Contact, Title: "Contact"},
		},
	}
	for _, s := range p.Sections {
		p.Nav = append(p.Nav, NavLink{Label: s.Title, Href: s.Anchor()})
	}

	panels := make([]SkillPanel, 0, len(tables.Categories))
	for _, c := range tables.Categories {
		panels = append(panels, Panel(c, mode, logger))
	}
	half := (len(panels) + 1) / 2
	p.Left, p.Right = panels[:half], panels[half:]
	return p
}

// Panel renders a single category.
func Panel(c skill.Category, mode theme.Mode, logger *slog.Logger) SkillPanel {
	pal := theme.PaletteFor(mode)
	if c.Layout == skill.LayoutGrid {
		return SkillPanel{Category: c, Chart: skill.RenderGrid(c.Skills, pal, logger)}
	}
	return SkillPanel{Category: c, Chart: skill.Render(c.Skills, pal, logger)}
}

// Panels returns every skill panel in declaration order.
func (p Page) Panels() []SkillPanel {
	out := make([]SkillPanel, 0, len(p.Left)+len(p.Right))
	out = append(out, p.Left...)
	return append(out, p.Right...)
}

// Landmark finds a section by id.
func (p Page) Landmark(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// ScrollTarget resolves a navigation href ("#skills" or "skills") to the
// landmark to scroll to. ok is false when nothing matches; callers treat
// that as a no-op.
func (p Page) ScrollTarget(href string) (Section, bool) {
	id := strings.TrimPrefix(strings.TrimSpace(href), "#")
	if id == "" {
		return Section{}, false
	}
	return p.Landmark(id)
}
