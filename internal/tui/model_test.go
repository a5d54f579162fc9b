package tui

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdashik24x7/portfolio/internal/content"
	"github.com/mdashik24x7/portfolio/internal/theme"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newModel(t *testing.T, store theme.Store) Model {
	t.Helper()
	tables, err := content.Load()
	require.NoError(t, err)
	ctrl := theme.NewController(store, theme.NoAmbient, discard)
	return New(tables, ctrl, discard, true)
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

var (
	down   = tea.KeyMsg{Type: tea.KeyDown}
	up     = tea.KeyMsg{Type: tea.KeyUp}
	tab    = tea.KeyMsg{Type: tea.KeyTab}
	toggle = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")}
)

func TestFocusMovesTooltip(t *testing.T) {
	m := newModel(t, theme.NewMemoryStore())
	m = send(m, tab)
	require.Equal(t, "software-arsenal", m.Category())

	tip, ok := m.Focused()
	require.True(t, ok)
	assert.Equal(t, "Premiere Pro", tip.Name)

	m = send(m, down, down)
	tip, _ = m.Focused()
	assert.Equal(t, "Figma", tip.Name)
	assert.Equal(t, "Advanced", tip.Label)

	m = send(m, down, down, down, down)
	tip, _ = m.Focused()
	assert.Equal(t, "After Effects", tip.Name, "focus stops at the last row")

	m = send(m, up)
	tip, _ = m.Focused()
	assert.Equal(t, "Illustrator", tip.Name)
}

func TestCategoryWraps(t *testing.T) {
	m := newModel(t, theme.NewMemoryStore())
	m = send(m, down, tab, tab, tab, tab)
	assert.Equal(t, "creative-focus", m.Category())
	tip, _ := m.Focused()
	assert.Equal(t, "Video Editing", tip.Name, "focus resets on category change")

	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "digital-management", m.Category())
}

func TestToggleTheme(t *testing.T) {
	store := theme.NewMemoryStore()
	m := newModel(t, store)
	m = send(m, tab)
	before, _ := m.Focused()

	m = send(m, toggle)
	after, _ := m.Focused()
	assert.NotEqual(t, before.Color, after.Color)
	assert.Contains(t, m.View(), "theme: light")

	v, ok, _ := store.Get(theme.PreferenceKey)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

type brokenStore struct{}

func (brokenStore) Get(string) (string, bool, error) { return "", false, nil }
func (brokenStore) Set(string, string) error         { return errors.New("read-only") }

func TestToggleTheme_NotSaved(t *testing.T) {
	m := send(newModel(t, brokenStore{}), toggle)
	assert.Contains(t, m.View(), "theme: light (not saved)")
}

func TestView(t *testing.T) {
	m := send(newModel(t, theme.NewMemoryStore()), tab)
	out := m.View()
	assert.Contains(t, out, "Software Arsenal")
	assert.Contains(t, out, "2/4")
	assert.Contains(t, out, "Expert (85%)")
	assert.Contains(t, out, "Proficiency: 85%")
	assert.Contains(t, out, "theme: dark")
}

func TestQuit(t *testing.T) {
	m := newModel(t, theme.NewMemoryStore())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEmptyTables(t *testing.T) {
	m := New(&content.Tables{}, theme.NewController(nil, nil, discard), discard, true)
	m = send(m, down, tab)
	_, ok := m.Focused()
	assert.False(t, ok)
	assert.Equal(t, "No skill categories.\n", m.View())
}
