package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadOBJ = `
# a single quad, triangulated by the fan rule
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func writeTempOBJ(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "quad.obj")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseOBJTriangulatesQuadIntoTwoTriangles(t *testing.T) {
	mesh, err := ParseOBJ(writeTempOBJ(t, quadOBJ))
	require.NoError(t, err)

	assert.Equal(t, TriangleList, mesh.Topology)
	assert.Equal(t, 4, len(mesh.Vertices))
	assert.Equal(t, 6, len(mesh.Indices)) // two triangles from the fan rule
}

func TestParseOBJFlipsVIntoImageSpace(t *testing.T) {
	mesh, err := ParseOBJ(writeTempOBJ(t, quadOBJ))
	require.NoError(t, err)

	// "vt 0 0" (bottom-left in OBJ's v-up convention) must become v=1.
	assert.InDelta(t, 1, mesh.Vertices[0].UV.Y, 1e-6)
}

func TestParseOBJComputesNonZeroTangents(t *testing.T) {
	mesh, err := ParseOBJ(writeTempOBJ(t, quadOBJ))
	require.NoError(t, err)

	for _, v := range mesh.Vertices {
		assert.Greater(t, v.Tangent.Magnitude(), float32(0))
	}
}

func TestParseOBJRejectsOutOfRangeIndex(t *testing.T) {
	_, err := ParseOBJ(writeTempOBJ(t, "v 0 0 0\nf 1 2 3\n"))
	assert.Error(t, err)
}

func TestParseOBJRejectsMissingFile(t *testing.T) {
	_, err := ParseOBJ(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}
