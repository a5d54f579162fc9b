package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdashik24x7/portfolio/internal/content"
	"github.com/mdashik24x7/portfolio/internal/skill"
	"github.com/mdashik24x7/portfolio/internal/theme"
)

func loadTables(t *testing.T) *content.Tables {
	t.Helper()
	tables, err := content.Load()
	require.NoError(t, err)
	return tables
}

func TestCompose_Nav(t *testing.T) {
	p := Compose(loadTables(t), theme.Dark, nil)

	require.Len(t, p.Nav, 5)
	assert.Equal(t, NavLink{Label: "Home", Href: "#home"}, p.Nav[0])
	assert.Equal(t, NavLink{Label: "Contact", Href: "#contact"}, p.Nav[4])
}

func TestCompose_SkillColumns(t *testing.T) {
	p := Compose(loadTables(t), theme.Light, nil)

	require.Len(t, p.Left, 2)
	require.Len(t, p.Right, 2)
	assert.Equal(t, "creative-focus", p.Left[0].Category.ID)
	assert.True(t, p.Left[0].Grid())
	assert.Equal(t, "software-arsenal", p.Left[1].Category.ID)
	assert.False(t, p.Left[1].Grid())

	sw := p.Left[1].Chart
	assert.Equal(t, "Premiere Pro", sw.Rows[0].Name)
	assert.Equal(t, "Photoshop", sw.Rows[1].Name)
	assert.Equal(t, "Figma", sw.Rows[2].Name)
	assert.Equal(t, "#2563eb", sw.Rows[0].Color)

	assert.Len(t, p.Panels(), 4)
}

func TestCompose_FollowsMode(t *testing.T) {
	tables := loadTables(t)
	dark := Compose(tables, theme.Dark, nil)
	light := Compose(tables, theme.Light, nil)

	assert.Equal(t, theme.PaletteFor(theme.Dark), dark.Palette)
	assert.NotEqual(t, dark.Left[1].Chart.Rows[0].Color, light.Left[1].Chart.Rows[0].Color)
}

func TestCompose_Deterministic(t *testing.T) {
	tables := loadTables(t)
	assert.Equal(t, Compose(tables, theme.Dark, nil), Compose(tables, theme.Dark, nil))
}

func TestCompose_NoCategories(t *testing.T) {
	p := Compose(&content.Tables{}, theme.Dark, nil)
	assert.Empty(t, p.Left)
	assert.Empty(t, p.Right)
}

func TestScrollTarget(t *testing.T) {
	p := Compose(loadTables(t), theme.Dark, nil)

	tests := []struct {
		href string
		want string
		ok   bool
	}{
		{"#skills", "skills", true},
		{"about", "about", true},
		{" #contact ", "contact", true},
		{"#projects", "", false},
		{"#", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		s, ok := p.ScrollTarget(tt.href)
		assert.Equal(t, tt.ok, ok, tt.href)
		assert.Equal(t, tt.want, s.ID, tt.href)
	}
}

func TestPanel_Layouts(t *testing.T) {
	c := skill.Category{
		ID:     "x",
		Layout: skill.LayoutGrid,
		Skills: []skill.Entry{{Name: "low", Level: 10}, {Name: "high", Level: 90}},
	}
	assert.Equal(t, "low", Panel(c, theme.Dark, nil).Chart.Rows[0].Name)

	c.Layout = skill.LayoutChart
	assert.Equal(t, "high", Panel(c, theme.Dark, nil).Chart.Rows[0].Name)
}
