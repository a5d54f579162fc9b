package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Dark")
	assert.NoError(t, err)
	assert.Equal(t, Dark, m)

	m, err = ParseMode("light")
	assert.NoError(t, err)
	assert.Equal(t, Light, m)

	_, err = ParseMode("")
	assert.Error(t, err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "dark", Dark.String())
	assert.Equal(t, "light", Light.String())
	assert.Equal(t, Light, Dark.Toggle())
}

func TestPaletteFor(t *testing.T) {
	dark := PaletteFor(Dark)
	light := PaletteFor(Light)

	assert.Equal(t, "#cbd5e1", dark.Text)
	assert.Equal(t, "#475569", light.Text)
	assert.Equal(t, "#1e293b", dark.TooltipBg)
	assert.Equal(t, "#ffffff", light.TooltipBg)
	assert.Equal(t, Dark, dark.Mode)
}
