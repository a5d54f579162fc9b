package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Icon
	}{
		{"scissors", Scissors},
		{"Pen-Tool", PenTool},
		{" message-square ", MessageSquare},
		{"", None},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("rocket")
	assert.ErrorContains(t, err, `unknown icon "rocket"`)
}

func TestString_RoundTripsThroughParse(t *testing.T) {
	for i := range names {
		got, err := Parse(i.String())
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
}

func TestUnmarshalYAML(t *testing.T) {
	var v struct {
		Icon Icon `yaml:"icon"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("icon: clapperboard\n"), &v))
	assert.Equal(t, Clapperboard, v.Icon)

	err := yaml.Unmarshal([]byte("icon: nope\n"), &v)
	assert.ErrorContains(t, err, "line 1")
}
