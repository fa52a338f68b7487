package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextureSampleNearestNeighbor(t *testing.T) {
	tex := NewTexture(2, 2)
	tex.Pixels[0] = ColorRed   // (0,0)
	tex.Pixels[1] = ColorGreen // (1,0)
	tex.Pixels[2] = ColorBlue  // (0,1)
	tex.Pixels[3] = ColorWhite // (1,1)

	assert.Equal(t, ColorRed, tex.Sample(Vector2{X: 0, Y: 0}))
	assert.Equal(t, ColorGreen, tex.Sample(Vector2{X: 0.9, Y: 0}))
	assert.Equal(t, ColorBlue, tex.Sample(Vector2{X: 0, Y: 0.9}))
	assert.Equal(t, ColorWhite, tex.Sample(Vector2{X: 0.99, Y: 0.99}))
}

func TestTextureSampleClampsOutOfRangeUV(t *testing.T) {
	tex := GenerateSolid(4, 4, ColorGray)
	assert.Equal(t, ColorGray, tex.Sample(Vector2{X: -1, Y: -1}))
	assert.Equal(t, ColorGray, tex.Sample(Vector2{X: 2, Y: 2}))
}

func TestGenerateCheckerboardAlternatesColors(t *testing.T) {
	tex := GenerateCheckerboard(4, 4, 1, ColorBlack, ColorWhite)
	assert.Equal(t, ColorBlack, tex.Sample(Vector2{X: 0, Y: 0}))
	assert.Equal(t, ColorWhite, tex.Sample(Vector2{X: 0.25, Y: 0}))
}
