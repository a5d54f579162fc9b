// Package termchart draws skill charts as horizontal bars in a terminal.
package termchart

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/mdashik24x7/portfolio/internal/icon"
	"github.com/mdashik24x7/portfolio/internal/skill"
)

const (
	defaultBarWidth  = 40
	defaultNameWidth = 14
	barFull          = "█"
	barEmpty         = "░"
)

var glyphs = map[icon.Icon]string{
	icon.Scissors:      "✂",
	icon.Image:         "▣",
	icon.Layout:        "▦",
	icon.Clapperboard:  "🎬",
	icon.Layers:        "❏",
	icon.Frame:         "⬚",
	icon.PenTool:       "✎",
	icon.Sparkles:      "✦",
	icon.Monitor:       "▭",
	icon.Code:          "⟨⟩",
	icon.Terminal:      "❯",
	icon.Youtube:       "▶",
	icon.MessageSquare: "✉",
	icon.Facebook:      "f",
	icon.Gamepad:       "🎮",
	icon.Music:         "♪",
}

// Glyph resolves an icon tag for terminal output. Unknown tags render as a
// bullet.
func Glyph(i icon.Icon) string {
	if g, ok := glyphs[i]; ok {
		return g
	}
	return "•"
}

// Options controls chart drawing.
type Options struct {
	// BarWidth is the number of cells representing level 100.
	BarWidth int
	// NameWidth truncates or pads skill names to this many cells.
	NameWidth int
	// Monochrome disables colors.
	Monochrome bool
	// Icons prefixes each row with its glyph.
	Icons bool
	// Focus highlights the row at this position; -1 for none.
	Focus int
}

// DefaultOptions returns options with color enabled when w is a terminal.
func DefaultOptions(w io.Writer) Options {
	return Options{
		BarWidth:   defaultBarWidth,
		NameWidth:  defaultNameWidth,
		Monochrome: !IsTerminal(w),
		Focus:      -1,
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (o Options) withDefaults() Options {
	if o.BarWidth <= 0 {
		o.BarWidth = defaultBarWidth
	}
	if o.NameWidth <= 0 {
		o.NameWidth = defaultNameWidth
	}
	return o
}

// Render draws one line per row: name, bar, and "Tier (N%)".
func Render(c skill.Chart, opts Options) string {
	opts = opts.withDefaults()
	if c.Empty() {
		return ""
	}

	text := lipgloss.NewStyle()
	track := lipgloss.NewStyle()
	focus := lipgloss.NewStyle().Bold(true)
	if !opts.Monochrome {
		text = text.Foreground(lipgloss.Color(c.Palette.Text))
		track = track.Foreground(lipgloss.Color(c.Palette.Grid))
		focus = focus.Background(lipgloss.Color(c.Palette.Cursor))
	}

	var b strings.Builder
	for i, r := range c.Rows {
		name := runewidth.Truncate(r.Name, opts.NameWidth, "…")
		name = runewidth.FillRight(name, opts.NameWidth)
		if opts.Icons {
			name = runewidth.FillRight(Glyph(r.Icon), 3) + name
		}

		filled := r.Width * opts.BarWidth / 100
		bar := lipgloss.NewStyle()
		tier := lipgloss.NewStyle()
		if !opts.Monochrome {
			bar = bar.Foreground(lipgloss.Color(r.Color))
			tier = tier.Foreground(lipgloss.Color(r.Color)).Bold(true)
		}

		line := text.Render(name) + " " +
			bar.Render(strings.Repeat(barFull, filled)) +
			track.Render(strings.Repeat(barEmpty, opts.BarWidth-filled)) + " " +
			tier.Render(r.Annotation())
		if i == opts.Focus {
			line = focus.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Tooltip draws the hover/focus box for a row.
func Tooltip(t skill.Tooltip, monochrome bool) string {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	level := lipgloss.NewStyle().Bold(true)
	badge := lipgloss.NewStyle().Padding(0, 1)
	if !monochrome {
		box = box.BorderForeground(lipgloss.Color(t.Color)).
			Foreground(lipgloss.Color(t.Fg))
		level = level.Foreground(lipgloss.Color(t.Color))
		badge = badge.Background(lipgloss.Color(t.Color)).Foreground(lipgloss.Color("#ffffff"))
	}
	body := lipgloss.NewStyle().Bold(true).Render(t.Name) + "\n" +
		"Proficiency: " + level.Render(strconv.Itoa(t.Level)+"%") + " " + badge.Render(t.Label)
	return box.Render(body)
}
