package web

import (
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mdashik24x7/portfolio/internal/skill"
)

const (
	svgBarWidth   = 40
	svgBarSpacing = 24
	svgHeight     = 360
	svgMinWidth   = 480
)

func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

// WriteSVG draws the chart as an SVG bar chart on the fixed 0..100 scale.
// Bars keep the chart's order and tier colors.
func WriteSVG(w io.Writer, title string, c skill.Chart) error {
	pal := c.Palette
	bars := make([]chart.Value, 0, c.Len())
	for _, r := range c.Rows {
		bars = append(bars, chart.Value{
			Label: r.Name,
			Value: float64(r.Level),
			Style: chart.Style{
				FillColor:   hexColor(r.Color),
				StrokeColor: hexColor(r.Color),
				StrokeWidth: 1,
			},
		})
	}

	width := svgMinWidth
	if need := c.Len()*(svgBarWidth+svgBarSpacing) + 160; need > width {
		width = need
	}

	graph := chart.BarChart{
		Title:      title,
		TitleStyle: chart.Style{FontColor: hexColor(pal.Text)},
		Width:      width,
		Height:     svgHeight,
		BarWidth:   svgBarWidth,
		BarSpacing: svgBarSpacing,
		Background: chart.Style{
			FillColor: hexColor(pal.TooltipBg),
			Padding:   chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: chart.Style{FillColor: hexColor(pal.TooltipBg)},
		XAxis:  chart.Style{FontColor: hexColor(pal.Text), StrokeColor: hexColor(pal.Grid)},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: skill.MinLevel, Max: skill.MaxLevel},
			Style: chart.Style{FontColor: hexColor(pal.Text), StrokeColor: hexColor(pal.Grid)},
		},
		Bars: bars,
	}
	return graph.Render(chart.SVG, w)
}
