package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// screenVertex builds a VertexOut already in screen space, depth pre-set to
// z and clip-w to w, for rasterizer tests that don't need a full vertex
// stage pass.
func screenVertex(x, y, z, w float32, uv Vector2, normal Vector3) VertexOut {
	return VertexOut{
		Position:      Vector4{X: x, Y: y, Z: z, W: w},
		UV:            uv,
		Normal:        normal,
		Tangent:       Vector3{X: 1, Y: 0, Z: 0},
		ViewDirection: Vector3{X: 0, Y: 0, Z: -1},
	}
}

func TestRenderMeshClearedFrameStaysBackground(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	mesh := NewMesh(nil, nil, TriangleList)

	RenderMesh(fb, mesh, MaterialTextures{}, ShadingObservedArea, false, false)

	for _, c := range fb.Color {
		assert.Equal(t, clearColor, c)
	}
}

func TestRenderTriangleCoversExpectedInteriorPixel(t *testing.T) {
	fb := NewFrameBuffer(32, 32)
	v0 := screenVertex(16, 4, 0.5, 1, Vector2{X: 0.5, Y: 0}, UnitZ3.Negate())
	v1 := screenVertex(4, 28, 0.5, 1, Vector2{X: 0, Y: 1}, UnitZ3.Negate())
	v2 := screenVertex(28, 28, 0.5, 1, Vector2{X: 1, Y: 1}, UnitZ3.Negate())

	// Passed as (v0, v2, v1) so every edge function is non-positive inside
	// the triangle, which is the winding the fill rule accepts.
	renderTriangle(fb, v0, v2, v1, MaterialTextures{}, ShadingObservedArea, false, false)

	idx := fb.index(16, 20)
	assert.NotEqual(t, clearColor, fb.Color[idx])
	assert.Less(t, fb.Depth[idx], float32(math.Inf(1)))
}

func TestRenderTriangleDepthTestKeepsNearerFragment(t *testing.T) {
	fb := NewFrameBuffer(32, 32)

	near := screenVertex(16, 4, 0.2, 1, Vector2{X: 0.5, Y: 0}, UnitZ3.Negate())
	nearB := screenVertex(4, 28, 0.2, 1, Vector2{X: 0, Y: 1}, UnitZ3.Negate())
	nearC := screenVertex(28, 28, 0.2, 1, Vector2{X: 1, Y: 1}, UnitZ3.Negate())

	far := screenVertex(16, 4, 0.8, 1, Vector2{X: 0.5, Y: 0}, UnitZ3.Negate())
	farB := screenVertex(4, 28, 0.8, 1, Vector2{X: 0, Y: 1}, UnitZ3.Negate())
	farC := screenVertex(28, 28, 0.8, 1, Vector2{X: 1, Y: 1}, UnitZ3.Negate())

	// Render the far triangle first, then the near one; the nearer depth
	// must win regardless of draw order.
	renderTriangle(fb, far, farC, farB, MaterialTextures{}, ShadingObservedArea, false, false)
	renderTriangle(fb, near, nearC, nearB, MaterialTextures{}, ShadingObservedArea, false, false)

	idx := fb.index(16, 20)
	assert.InDelta(t, 0.2, fb.Depth[idx], 1e-4)
}

func TestRenderTriangleSkipsWhenUVOutOfRange(t *testing.T) {
	fb := NewFrameBuffer(32, 32)
	v0 := screenVertex(16, 4, 0.5, 1, Vector2{X: 1.5, Y: 0}, UnitZ3.Negate())
	v1 := screenVertex(4, 28, 0.5, 1, Vector2{X: 0, Y: 1}, UnitZ3.Negate())
	v2 := screenVertex(28, 28, 0.5, 1, Vector2{X: 1, Y: 1}, UnitZ3.Negate())

	renderTriangle(fb, v0, v2, v1, MaterialTextures{}, ShadingObservedArea, false, false)

	// (16,27) lies inside the triangle and its own interpolated uv is in
	// range; it stays clear because the out-of-range uv near v0, reached
	// earlier in scan order, abandons the whole triangle.
	idx := fb.index(16, 27)
	assert.Equal(t, clearColor, fb.Color[idx])
}

func TestRenderTriangleOutsideScreenRectIsCulled(t *testing.T) {
	fb := NewFrameBuffer(32, 32)
	v0 := screenVertex(-10, -10, 0.5, 1, Vector2{X: 0, Y: 0}, UnitZ3.Negate())
	v1 := screenVertex(-5, -5, 0.5, 1, Vector2{X: 1, Y: 0}, UnitZ3.Negate())
	v2 := screenVertex(-1, -1, 0.5, 1, Vector2{X: 0, Y: 1}, UnitZ3.Negate())

	renderTriangle(fb, v0, v1, v2, MaterialTextures{}, ShadingObservedArea, false, false)

	for _, c := range fb.Color {
		assert.Equal(t, clearColor, c)
	}
}

func TestRenderMeshStripWithRepeatedIndicesDoesNotPanic(t *testing.T) {
	mesh := NewMesh(
		[]Vertex{
			NewVertex(Vector3{X: 0, Y: 0, Z: 0}, Vector2{}),
			NewVertex(Vector3{X: 1, Y: 0, Z: 0}, Vector2{}),
			NewVertex(Vector3{X: 1, Y: 1, Z: 0}, Vector2{}),
			NewVertex(Vector3{X: 0, Y: 1, Z: 0}, Vector2{}),
		},
		[]uint32{0, 1, 2, 2, 3},
		TriangleStrip,
	)
	mesh.ensureVerticesOut()
	for i := range mesh.Vertices {
		mesh.VerticesOut[i] = VertexOut{Position: Vector4{X: float32(i), Y: float32(i), Z: 0.5, W: 1}}
	}

	fb := NewFrameBuffer(4, 4)
	// The repeated index pair (2,2) makes the windows at positions 1 and 2
	// degenerate; rendering the strip must not panic.
	assert.NotPanics(t, func() {
		RenderMesh(fb, mesh, MaterialTextures{}, ShadingObservedArea, false, false)
	})
}
