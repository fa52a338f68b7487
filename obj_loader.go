package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseOBJ loads a Wavefront OBJ file, fan-triangulating n-gon faces and
// computing a per-vertex tangent from the UV-space edge deltas of each
// triangle it touches, the way Utils::ParseOBJ does. Every face-vertex
// becomes its own output vertex (OBJ face tuples are not deduplicated
// across faces), and the result is always a TriangleList mesh.
func ParseOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse obj %q: %w", path, err)
	}
	defer file.Close()

	var positions []Vector3
	var uvs []Vector2
	var normals []Vector3
	var vertices []Vertex
	var indices []uint32

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseVector3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("parse obj %q line %d: %w", path, lineNum, err)
			}
			positions = append(positions, p)

		case "vn":
			n, err := parseVector3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("parse obj %q line %d: %w", path, lineNum, err)
			}
			normals = append(normals, n)

		case "vt":
			uv, err := parseVector2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("parse obj %q line %d: %w", path, lineNum, err)
			}
			uv.Y = 1 - uv.Y
			uvs = append(uvs, uv)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("parse obj %q line %d: face needs at least 3 vertices", path, lineNum)
			}

			faceStart := len(vertices)
			for _, token := range fields[1:] {
				v, err := buildFaceVertex(token, positions, uvs, normals)
				if err != nil {
					return nil, fmt.Errorf("parse obj %q line %d: %w", path, lineNum, err)
				}
				vertices = append(vertices, v)
			}

			// Fan triangulation, and tangent accumulation per resulting
			// triangle from the UV-space edge deltas.
			for i := 1; i < len(fields)-2; i++ {
				i0, i1, i2 := faceStart, faceStart+i, faceStart+i+1
				addTangent(vertices, i0, i1, i2)
				indices = append(indices, uint32(i0), uint32(i1), uint32(i2))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse obj %q: %w", path, err)
	}

	for i := range vertices {
		vertices[i].Tangent = vertices[i].Tangent.Normalized()
	}

	return NewMesh(vertices, indices, TriangleList), nil
}

func parseVector3(fields []string) (Vector3, error) {
	if len(fields) < 3 {
		return Vector3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err1 := strconv.ParseFloat(fields[0], 32)
	y, err2 := strconv.ParseFloat(fields[1], 32)
	z, err3 := strconv.ParseFloat(fields[2], 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return Vector3{}, fmt.Errorf("invalid float components")
	}
	return Vector3{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

func parseVector2(fields []string) (Vector2, error) {
	if len(fields) < 2 {
		return Vector2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	x, err1 := strconv.ParseFloat(fields[0], 32)
	y, err2 := strconv.ParseFloat(fields[1], 32)
	if err1 != nil || err2 != nil {
		return Vector2{}, fmt.Errorf("invalid float components")
	}
	return Vector2{X: float32(x), Y: float32(y)}, nil
}

// buildFaceVertex resolves one "v", "v/vt", "v/vt/vn" or "v//vn" face token
// into a full Vertex, defaulting color to magenta like NewVertex.
func buildFaceVertex(token string, positions []Vector3, uvs []Vector2, normals []Vector3) (Vertex, error) {
	parts := strings.Split(token, "/")

	posIdx, err := parseOBJIndex(parts[0], len(positions))
	if err != nil {
		return Vertex{}, fmt.Errorf("invalid position index in %q: %w", token, err)
	}
	v := NewVertex(positions[posIdx], Vector2{})

	if len(parts) >= 2 && parts[1] != "" {
		uvIdx, err := parseOBJIndex(parts[1], len(uvs))
		if err != nil {
			return Vertex{}, fmt.Errorf("invalid uv index in %q: %w", token, err)
		}
		v.UV = uvs[uvIdx]
	}

	if len(parts) >= 3 && parts[2] != "" {
		normIdx, err := parseOBJIndex(parts[2], len(normals))
		if err != nil {
			return Vertex{}, fmt.Errorf("invalid normal index in %q: %w", token, err)
		}
		v.Normal = normals[normIdx]
	}

	return v, nil
}

func parseOBJIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	idx := n - 1
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("index %d out of range (have %d)", n, count)
	}
	return idx, nil
}

// addTangent computes the tangent of the triangle (i0,i1,i2) from its UV
// edge deltas and accumulates it into all three vertices (normalized once
// the whole file has been read, so a shared vertex's tangent reflects
// every triangle that touches it).
func addTangent(vertices []Vertex, i0, i1, i2 int) {
	p0, p1, p2 := vertices[i0].Position, vertices[i1].Position, vertices[i2].Position
	uv0, uv1, uv2 := vertices[i0].UV, vertices[i1].UV, vertices[i2].UV

	edge1 := p1.Sub(p0)
	edge2 := p2.Sub(p0)
	deltaUV1 := uv1.Sub(uv0)
	deltaUV2 := uv2.Sub(uv0)

	denom := deltaUV1.X*deltaUV2.Y - deltaUV2.X*deltaUV1.Y
	if AreEqual(denom, 0) {
		return
	}
	r := 1 / denom

	tangent := edge1.Scale(deltaUV2.Y).Sub(edge2.Scale(deltaUV1.Y)).Scale(r)

	vertices[i0].Tangent = vertices[i0].Tangent.Add(tangent)
	vertices[i1].Tangent = vertices[i1].Tangent.Add(tangent)
	vertices[i2].Tangent = vertices[i2].Tangent.Add(tangent)
}
