package skill

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdashik24x7/portfolio/internal/theme"
)

func TestTierOf_Boundaries(t *testing.T) {
	tests := []struct {
		level int
		want  Tier
	}{
		{0, Beginner},
		{39, Beginner},
		{40, Intermediate},
		{59, Intermediate},
		{60, Advanced},
		{74, Advanced},
		{75, Expert},
		{89, Expert},
		{90, Master},
		{100, Master},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierOf(tt.level), "level %d", tt.level)
	}
}

func TestTierOf_PartitionsScale(t *testing.T) {
	counts := map[Tier]int{}
	prev := Beginner
	for l := MinLevel; l <= MaxLevel; l++ {
		got := TierOf(l)
		require.GreaterOrEqual(t, got, prev, "tiers must not decrease at %d", l)
		prev = got
		counts[got]++
	}
	assert.Equal(t, map[Tier]int{
		Beginner:     40,
		Intermediate: 20,
		Advanced:     15,
		Expert:       15,
		Master:       11,
	}, counts)
}

func TestClassify_ColorsPerMode(t *testing.T) {
	tests := []struct {
		level       int
		label       string
		light, dark string
	}{
		{95, "Master", "#0d9488", "#2dd4bf"},
		{80, "Expert", "#2563eb", "#60a5fa"},
		{70, "Advanced", "#4f46e5", "#818cf8"},
		{50, "Intermediate", "#d97706", "#fbbf24"},
		{10, "Beginner", "#dc2626", "#f87171"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			l := Classify(tt.level, theme.Light)
			d := Classify(tt.level, theme.Dark)
			assert.Equal(t, tt.label, l.Label)
			assert.Equal(t, tt.label, d.Label)
			assert.Equal(t, tt.light, l.Color)
			assert.Equal(t, tt.dark, d.Color)
		})
	}
}

func TestClassify_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, "Beginner", Classify(-5, theme.Dark).Label)
	assert.Equal(t, "Master", Classify(140, theme.Dark).Label)
}

func TestNormalize(t *testing.T) {
	for _, l := range []int{0, 50, 100} {
		got, err := Normalize(l)
		assert.NoError(t, err)
		assert.Equal(t, l, got)
	}

	got, err := Normalize(-1)
	assert.Equal(t, 0, got)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, -1, verr.Level)

	got, err = Normalize(101)
	assert.Equal(t, 100, got)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 101, verr.Level)
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "Expert", Expert.String())
	assert.Equal(t, "Unknown", Tier(9).String())
}
