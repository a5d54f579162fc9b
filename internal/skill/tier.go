package skill

import "github.com/mdashik24x7/portfolio/internal/theme"

// Tier is a qualitative proficiency label.
type Tier int

const (
	Beginner Tier = iota
	Intermediate
	Advanced
	Expert
	Master
)

var tierLabels = [...]string{"Beginner", "Intermediate", "Advanced", "Expert", "Master"}

func (t Tier) String() string {
	if t < Beginner || t > Master {
		return "Unknown"
	}
	return tierLabels[t]
}

// Lower bounds, highest first. Intervals are closed below, open above;
// Master additionally includes MaxLevel.
var thresholds = []struct {
	min  int
	tier Tier
}{
	{90, Master},
	{75, Expert},
	{60, Advanced},
	{40, Intermediate},
	{MinLevel, Beginner},
}

// light, dark
var tierColors = map[Tier][2]string{
	Master:       {"#0d9488", "#2dd4bf"},
	Expert:       {"#2563eb", "#60a5fa"},
	Advanced:     {"#4f46e5", "#818cf8"},
	Intermediate: {"#d97706", "#fbbf24"},
	Beginner:     {"#dc2626", "#f87171"},
}

// TierInfo is the derived label and color for a level.
type TierInfo struct {
	Tier  Tier
	Label string
	Color string
}

// TierOf maps a level to its tier. Out-of-range levels are clamped.
func TierOf(level int) Tier {
	level, _ = Normalize(level)
	for _, th := range thresholds {
		if level >= th.min {
			return th.tier
		}
	}
	return Beginner
}

// Classify returns the tier label and its color for mode.
func Classify(level int, mode theme.Mode) TierInfo {
	t := TierOf(level)
	c := tierColors[t]
	return TierInfo{
		Tier:  t,
		Label: t.String(),
		Color: theme.Pick(mode, c[0], c[1]),
	}
}
