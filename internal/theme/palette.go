package theme

// Palette is the set of chart color tokens for one mode.
// Colors are CSS hex strings.
type Palette struct {
	Mode Mode

	Text      string
	Grid      string
	TooltipBg string
	TooltipFg string
	Cursor    string

	// Radar accent, also used as the default bar fill.
	Stroke string
	Fill   string
}

// PaletteFor derives the palette for m. It is recomputed on every call so a
// theme change is visible on the next render.
func PaletteFor(m Mode) Palette {
	return Palette{
		Mode:      m,
		Text:      Pick(m, "#475569", "#cbd5e1"),
		Grid:      Pick(m, "#e2e8f0", "#334155"),
		TooltipBg: Pick(m, "#ffffff", "#1e293b"),
		TooltipFg: Pick(m, "#0f172a", "#f1f5f9"),
		Cursor:    Pick(m, "#f1f5f9", "#334155"),
		Stroke:    Pick(m, "#14b8a6", "#5eead4"),
		Fill:      Pick(m, "#99f6e4", "#2dd4bf"),
	}
}
