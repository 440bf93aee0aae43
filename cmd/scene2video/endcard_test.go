package cmd

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/scene2video/internal/theme"
)

func TestParseHexColor(t *testing.T) {
	fallback := color.RGBA{R: 1, G: 2, B: 3, A: 0xff}

	assert.Equal(t, color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}, parseHexColor("#0f172a", fallback))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, parseHexColor("#fff", fallback))
	assert.Equal(t, fallback, parseHexColor("", fallback))
	assert.Equal(t, fallback, parseHexColor("rgba(0,0,0,0.5)", fallback))
	assert.Equal(t, fallback, parseHexColor("#12345", fallback))
}

func TestRenderEndcard(t *testing.T) {
	img, err := renderEndcard("https://example.com", "Subscribe", theme.Default(), 400)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 400, bounds.Dx())
	assert.Equal(t, 400, bounds.Dy())

	// Corners carry the theme background.
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0x0f0f), r)
	assert.Equal(t, uint32(0x1717), g)
	assert.Equal(t, uint32(0x2a2a), b)
}

func TestRenderEndcardRejectsNothing(t *testing.T) {
	_, err := renderEndcard("x", "", theme.Default(), 100)
	require.NoError(t, err)
}
