package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformVerticesProjectsPointOnViewAxisToScreenCenter(t *testing.T) {
	mesh := NewMesh(
		[]Vertex{NewVertex(Vector3{X: 0, Y: 0, Z: 10}, Vector2{})},
		[]uint32{0, 0, 0},
		TriangleList,
	)

	view := IdentityMatrix()
	proj := CreatePerspectiveFovLH(1, 1, 0.1, 100)

	TransformVertices(mesh, view, proj, 640, 480)

	out := mesh.VerticesOut[0]
	assert.InDelta(t, 320, out.Position.X, 1e-2)
	assert.InDelta(t, 240, out.Position.Y, 1e-2)
}

func TestTransformVerticesPreservesClipW(t *testing.T) {
	mesh := NewMesh(
		[]Vertex{NewVertex(Vector3{X: 1, Y: 2, Z: 20}, Vector2{})},
		[]uint32{0, 0, 0},
		TriangleList,
	)

	view := IdentityMatrix()
	proj := CreatePerspectiveFovLH(1, 1, 0.1, 100)

	TransformVertices(mesh, view, proj, 640, 480)

	assert.InDelta(t, 20, mesh.VerticesOut[0].Position.W, 1e-4)
}

func TestTransformVerticesNormalizesTransformedNormal(t *testing.T) {
	mesh := NewMesh(
		[]Vertex{{
			Position: Vector3{X: 0, Y: 0, Z: 10},
			Normal:   Vector3{X: 0, Y: 0, Z: 5}, // not unit length
		}},
		[]uint32{0, 0, 0},
		TriangleList,
	)
	mesh.WorldMatrix = CreateRotationY(0.4)

	view := IdentityMatrix()
	proj := CreatePerspectiveFovLH(1, 1, 0.1, 100)

	TransformVertices(mesh, view, proj, 640, 480)

	assert.InDelta(t, 1, mesh.VerticesOut[0].Normal.Magnitude(), 1e-4)
}
