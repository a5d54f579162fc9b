// Package tui is an interactive terminal browser for the skill charts.
// Moving the focus between bars shows the same tooltip the web page shows
// on hover.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mdashik24x7/portfolio/internal/content"
	"github.com/mdashik24x7/portfolio/internal/page"
	"github.com/mdashik24x7/portfolio/internal/skill"
	"github.com/mdashik24x7/portfolio/internal/termchart"
	"github.com/mdashik24x7/portfolio/internal/theme"
)

// Model is the bubbletea model.
type Model struct {
	tables     *content.Tables
	ctrl       *theme.Controller
	logger     *slog.Logger
	keys       keyMap
	help       help.Model
	monochrome bool

	category int
	focus    int
	width    int
	status   string
}

// New returns a model positioned on the first category.
func New(tables *content.Tables, ctrl *theme.Controller, logger *slog.Logger, monochrome bool) Model {
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		tables:     tables,
		ctrl:       ctrl,
		logger:     logger,
		keys:       defaultKeys(),
		help:       help.New(),
		monochrome: monochrome,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// panel renders the current category for the current theme. It is rebuilt
// on every call so a toggle shows up immediately.
func (m Model) panel() (page.SkillPanel, bool) {
	if len(m.tables.Categories) == 0 {
		return page.SkillPanel{}, false
	}
	return page.Panel(m.tables.Categories[m.category], m.ctrl.Mode(), m.logger), true
}

// Focused returns the tooltip for the focused row.
func (m Model) Focused() (skill.Tooltip, bool) {
	p, ok := m.panel()
	if !ok {
		return skill.Tooltip{}, false
	}
	return p.Chart.TooltipAt(m.focus)
}

// Category returns the id of the category on screen.
func (m Model) Category() string {
	if len(m.tables.Categories) == 0 {
		return ""
	}
	return m.tables.Categories[m.category].ID
}

func (m Model) rows() int {
	if len(m.tables.Categories) == 0 {
		return 0
	}
	return len(m.tables.Categories[m.category].Skills)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.focus > 0 {
				m.focus--
			}
		case key.Matches(msg, m.keys.Down):
			if m.focus < m.rows()-1 {
				m.focus++
			}
		case key.Matches(msg, m.keys.Next):
			m = m.switchCategory(1)
		case key.Matches(msg, m.keys.Prev):
			m = m.switchCategory(-1)
		case key.Matches(msg, m.keys.Toggle):
			mode, err := m.ctrl.Toggle()
			m.status = "theme: " + mode.String()
			if err != nil {
				m.status += " (not saved)"
			}
		}
	}
	return m, nil
}

func (m Model) switchCategory(delta int) Model {
	n := len(m.tables.Categories)
	if n == 0 {
		return m
	}
	m.category = (m.category + delta + n) % n
	m.focus = 0
	return m
}

func (m Model) View() string {
	p, ok := m.panel()
	if !ok {
		return "No skill categories.\n"
	}
	pal := p.Chart.Palette

	title := lipgloss.NewStyle().Bold(true)
	badge := lipgloss.NewStyle().Padding(0, 1)
	muted := lipgloss.NewStyle()
	if !m.monochrome {
		title = title.Foreground(lipgloss.Color(pal.Stroke))
		badge = badge.Background(lipgloss.Color(pal.Fill)).Foreground(lipgloss.Color(pal.TooltipBg))
		muted = muted.Foreground(lipgloss.Color(pal.Text))
	}

	var b strings.Builder
	b.WriteString(title.Render(p.Category.Title))
	if p.Category.Badge != "" {
		b.WriteString(" " + badge.Render(p.Category.Badge))
	}
	b.WriteString(muted.Render(fmt.Sprintf("  %d/%d", m.category+1, len(m.tables.Categories))))
	b.WriteString("\n\n")

	b.WriteString(termchart.Render(p.Chart, termchart.Options{
		Monochrome: m.monochrome,
		Icons:      true,
		Focus:      m.focus,
	}))
	b.WriteString("\n")

	if tip, ok := p.Chart.TooltipAt(m.focus); ok {
		b.WriteString(termchart.Tooltip(tip, m.monochrome))
		b.WriteString("\n")
	}

	status := "theme: " + m.ctrl.Mode().String()
	if m.status != "" {
		status = m.status
	}
	b.WriteString(muted.Render(status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
