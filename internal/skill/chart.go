package skill

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mdashik24x7/portfolio/internal/theme"
)

// ViewRow is an entry joined with its tier for a single render pass.
type ViewRow struct {
	Entry
	TierInfo

	// Index is the row's position in the input list.
	Index int
	// Width is the bar length as a percentage of the fixed 0..100 scale.
	Width int
}

// Annotation is the right-hand axis label, e.g. "Advanced (70%)".
func (r ViewRow) Annotation() string {
	return fmt.Sprintf("%s (%d%%)", r.Label, r.Level)
}

// Chart is a rendered bar chart.
type Chart struct {
	Rows    []ViewRow
	Palette theme.Palette
}

// Render sorts entries by descending level, keeping input order for equal
// levels, and annotates each with its tier. The input is not modified.
// Out-of-range levels are clamped and logged.
func Render(entries []Entry, palette theme.Palette, logger *slog.Logger) Chart {
	rows := annotate(entries, palette, logger)
	slices.SortStableFunc(rows, func(a, b ViewRow) int {
		return b.Level - a.Level
	})
	return Chart{Rows: rows, Palette: palette}
}

// RenderGrid annotates entries like Render but keeps declaration order.
func RenderGrid(entries []Entry, palette theme.Palette, logger *slog.Logger) Chart {
	return Chart{Rows: annotate(entries, palette, logger), Palette: palette}
}

func annotate(entries []Entry, palette theme.Palette, logger *slog.Logger) []ViewRow {
	if logger == nil {
		logger = slog.Default()
	}
	rows := make([]ViewRow, 0, len(entries))
	for i, e := range entries {
		level, err := Normalize(e.Level)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				verr.Name = e.Name
			}
			logger.Warn("clamping skill level", "err", err, "clamped", level)
			e.Level = level
		}
		rows = append(rows, ViewRow{
			Entry:    e,
			TierInfo: Classify(level, palette.Mode),
			Index:    i,
			Width:    level * 100 / MaxLevel,
		})
	}
	return rows
}

// Len reports the number of rows.
func (c Chart) Len() int { return len(c.Rows) }

// Empty reports whether there is nothing to draw.
func (c Chart) Empty() bool { return len(c.Rows) == 0 }

// Row returns the row for name.
func (c Chart) Row(name string) (ViewRow, bool) {
	for _, r := range c.Rows {
		if r.Name == name {
			return r, true
		}
	}
	return ViewRow{}, false
}

// Tooltip is what a hovered or focused bar shows.
type Tooltip struct {
	Name  string
	Level int
	Label string
	Color string
	Bg    string
	Fg    string
}

func (t Tooltip) String() string {
	return fmt.Sprintf("Proficiency: %d%% %s", t.Level, t.Label)
}

// Tooltip answers the hover/focus query for the named row.
func (c Chart) Tooltip(name string) (Tooltip, bool) {
	r, ok := c.Row(name)
	if !ok {
		return Tooltip{}, false
	}
	return c.tooltipFor(r), true
}

// TooltipAt answers the hover/focus query by display position.
func (c Chart) TooltipAt(i int) (Tooltip, bool) {
	if i < 0 || i >= len(c.Rows) {
		return Tooltip{}, false
	}
	return c.tooltipFor(c.Rows[i]), true
}

func (c Chart) tooltipFor(r ViewRow) Tooltip {
	return Tooltip{
		Name:  r.Name,
		Level: r.Level,
		Label: r.Label,
		Color: r.Color,
		Bg:    c.Palette.TooltipBg,
		Fg:    c.Palette.TooltipFg,
	}
}
