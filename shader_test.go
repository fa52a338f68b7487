package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLambertDividesByPi(t *testing.T) {
	result := Lambert(1, ColorWhite)
	expected := float32(1 / math.Pi)
	assert.InDelta(t, expected, result.R, 1e-6)
	assert.InDelta(t, expected, result.G, 1e-6)
	assert.InDelta(t, expected, result.B, 1e-6)
}

func TestPhongZeroWhenViewerOnFarSideOfReflection(t *testing.T) {
	n := Vector3{X: 0, Y: 1, Z: 0}
	l := Vector3{X: 0, Y: -1, Z: 0} // incident ray hitting the surface from above
	v := Vector3{X: 0, Y: -1, Z: 0} // viewer below the surface, opposite the reflection
	assert.Equal(t, ColorBlack, Phong(ColorWhite, 25, l, v, n))
}

func TestPhongPeaksAtPerfectReflection(t *testing.T) {
	n := Vector3{X: 0, Y: 1, Z: 0}
	l := Vector3{X: 0, Y: -1, Z: 0}
	v := Reflect(l, n) // viewer positioned exactly along the reflection direction

	result := Phong(ColorWhite, 1, l, v, n)
	assert.InDelta(t, 1, result.R, 1e-5)
}

func TestShadeVertexObservedAreaModeAddsAmbient(t *testing.T) {
	v := VertexOut{
		Normal:        LightDirection.Negate().Normalized(),
		ViewDirection: Vector3{X: 0, Y: 0, Z: -1},
	}
	color := ShadeVertex(v, MaterialTextures{}, ShadingObservedArea, false)
	assert.InDelta(t, 1+AmbientColor.R, color.R, 1e-4)
	assert.Equal(t, color.R, color.G)
	assert.Equal(t, color.G, color.B)
}

func TestShadeVertexBacklitSurfaceIsAmbientOnly(t *testing.T) {
	v := VertexOut{
		Normal:        LightDirection.Normalized(), // facing away from the light
		ViewDirection: Vector3{X: 0, Y: 0, Z: -1},
	}
	color := ShadeVertex(v, MaterialTextures{}, ShadingCombined, false)
	assert.Equal(t, AmbientColor, color)
}

func TestShadeVertexNormalMapPerturbsShading(t *testing.T) {
	base := VertexOut{
		Normal:        Vector3{X: 0, Y: 0, Z: -1},
		Tangent:       Vector3{X: 1, Y: 0, Z: 0},
		ViewDirection: Vector3{X: 0, Y: 0, Z: -1},
		UV:            Vector2{X: 0.5, Y: 0.5},
	}

	flatNormalMap := GenerateSolid(1, 1, ColorRGB{R: 0.5, G: 0.5, B: 1}) // straight up in tangent space
	tiltedNormalMap := GenerateSolid(1, 1, ColorRGB{R: 0.9, G: 0.5, B: 0.7})

	textures := MaterialTextures{Normal: flatNormalMap}
	withFlat := ShadeVertex(base, textures, ShadingObservedArea, true)

	textures.Normal = tiltedNormalMap
	withTilted := ShadeVertex(base, textures, ShadingObservedArea, true)

	assert.NotEqual(t, withFlat, withTilted)
}
