package main

// boundingOffset pads a triangle's screen bounding box by this many pixels
// in every direction before rasterization, matching the reference's
// conservative (non-exact) bounding box.
const boundingOffset = 5

// RenderMesh rasterizes every triangle of mesh into fb, dispatching on
// topology: TriangleList groups indices in threes, TriangleStrip slides a
// window of three across the index buffer, skipping degenerate triangles
// and flipping winding on odd steps.
func RenderMesh(fb *FrameBuffer, mesh *Mesh, textures MaterialTextures, mode ShadingMode, useNormalMap, depthView bool) {
	switch mesh.Topology {
	case TriangleList:
		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			v0 := mesh.VerticesOut[mesh.Indices[i]]
			v1 := mesh.VerticesOut[mesh.Indices[i+1]]
			v2 := mesh.VerticesOut[mesh.Indices[i+2]]
			renderTriangle(fb, v0, v1, v2, textures, mode, useNormalMap, depthView)
		}
	case TriangleStrip:
		if len(mesh.Indices) < 3 {
			return
		}
		maxIndex := len(mesh.Indices) - 2
		for i := 0; i < maxIndex; i++ {
			idx0, idx1, idx2 := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
			if idx0 == idx1 || idx1 == idx2 || idx0 == idx2 {
				continue
			}
			v0 := mesh.VerticesOut[idx0]
			v1 := mesh.VerticesOut[idx1]
			v2 := mesh.VerticesOut[idx2]
			if i&1 != 0 {
				renderTriangle(fb, v2, v1, v0, textures, mode, useNormalMap, depthView)
			} else {
				renderTriangle(fb, v0, v1, v2, textures, mode, useNormalMap, depthView)
			}
		}
	}
}

// renderTriangle rasterizes a single triangle, matching
// Renderer::RenderTriangle: conservative whole-triangle screen-rect
// culling, a bounding box padded by boundingOffset, edge-function
// traversal with the (w0,w1,w2 <= 0) fill rule, perspective-correct
// depth/UV/W interpolation, a >= depth test (first writer at equal depth
// wins), and the UV-out-of-range quirk that aborts the ENTIRE triangle
// (not just the current pixel) the first time it's hit.
func renderTriangle(fb *FrameBuffer, v0, v1, v2 VertexOut, textures MaterialTextures, mode ShadingMode, useNormalMap, depthView bool) {
	width, height := float32(fb.Width), float32(fb.Height)

	if v0.Position.X < 0 || v0.Position.X > width ||
		v1.Position.X < 0 || v1.Position.X > width ||
		v2.Position.X < 0 || v2.Position.X > width ||
		v0.Position.Y < 0 || v0.Position.Y > height ||
		v1.Position.Y < 0 || v1.Position.Y > height ||
		v2.Position.Y < 0 || v2.Position.Y > height {
		return
	}

	vec0, vec1, vec2 := v0.Position.XY(), v1.Position.XY(), v2.Position.XY()

	minF := func(a, b, c float32) float32 {
		m := a
		if b < m {
			m = b
		}
		if c < m {
			m = c
		}
		return m
	}
	maxF := func(a, b, c float32) float32 {
		m := a
		if b > m {
			m = b
		}
		if c > m {
			m = c
		}
		return m
	}

	xMin := int(minF(vec0.X, vec1.X, vec2.X)) - boundingOffset
	xMax := int(maxF(vec0.X, vec1.X, vec2.X)) + boundingOffset
	yMin := int(minF(vec0.Y, vec1.Y, vec2.Y)) - boundingOffset
	yMax := int(maxF(vec0.Y, vec1.Y, vec2.Y)) + boundingOffset

	if xMin < 0 {
		xMin = 0
	}
	if yMin < 0 {
		yMin = 0
	}
	if xMax > fb.Width {
		xMax = fb.Width
	}
	if yMax > fb.Height {
		yMax = fb.Height
	}
	if xMax < 0 || xMin > fb.Width || yMax < 0 || yMin > fb.Height {
		return
	}

	edge0 := vec2.Sub(vec1)
	edge1 := vec0.Sub(vec2)
	edge2 := vec1.Sub(vec0)

	divideW0 := 1 / v0.Position.W
	divideW1 := 1 / v1.Position.W
	divideW2 := 1 / v2.Position.W

	divideZ0 := 1 / v0.Position.Z
	divideZ1 := 1 / v1.Position.Z
	divideZ2 := 1 / v2.Position.Z

	uv0 := v0.UV.Scale(divideW0)
	uv1 := v1.UV.Scale(divideW1)
	uv2 := v2.UV.Scale(divideW2)

	for py := yMin; py < yMax; py++ {
		for px := xMin; px < xMax; px++ {
			pixelPoint := Vector2{X: float32(px) + 0.5, Y: float32(py) + 0.5}

			w0 := Cross2(pixelPoint.Sub(vec1), edge0)
			w1 := Cross2(pixelPoint.Sub(vec2), edge1)
			w2 := Cross2(pixelPoint.Sub(vec0), edge2)

			if w0 > 0 || w1 > 0 || w2 > 0 {
				continue
			}

			invTotalWeight := 1 / (w0 + w1 + w2)
			w0 *= invTotalWeight
			w1 *= invTotalWeight
			w2 *= invTotalWeight

			interpolatedZ := 1 / (divideZ0*w0 + divideZ1*w1 + divideZ2*w2)
			pixelIdx := fb.index(px, py)

			if interpolatedZ < 0 || interpolatedZ > 1 || fb.Depth[pixelIdx] <= interpolatedZ {
				continue
			}

			interpolatedW := 1 / (divideW0*w0 + divideW1*w1 + divideW2*w2)
			uvInterpolated := uv0.Scale(w0).Add(uv1.Scale(w1)).Add(uv2.Scale(w2)).Scale(interpolatedW)

			if uvInterpolated.X < 0 || uvInterpolated.X > 1 || uvInterpolated.Y < 0 || uvInterpolated.Y > 1 {
				// Mirrors the reference quirk exactly: an out-of-range UV
				// aborts rasterization of the whole triangle, not just
				// this pixel.
				return
			}

			fb.Depth[pixelIdx] = interpolatedZ

			shadeVertex := VertexOut{
				Position: Vector4{X: float32(px), Y: float32(py), Z: interpolatedZ, W: interpolatedW},
				UV:       uvInterpolated,
				Normal:   v0.Normal.Scale(w0).Add(v1.Normal.Scale(w1)).Add(v2.Normal.Scale(w2)).Normalized(),
				Tangent:  v0.Tangent.Scale(w0).Add(v1.Tangent.Scale(w1)).Add(v2.Tangent.Scale(w2)).Normalized(),
				ViewDirection: v0.ViewDirection.Scale(w0).Add(v1.ViewDirection.Scale(w1)).Add(v2.ViewDirection.Scale(w2)).Normalized(),
			}

			var pixelColor ColorRGB
			if depthView {
				remapped := remapf32(interpolatedZ, 0.985, 1)
				pixelColor = ColorRGB{R: remapped, G: remapped, B: remapped}
			} else {
				pixelColor = ShadeVertex(shadeVertex, textures, mode, useNormalMap)
			}
			pixelColor = pixelColor.MaxToOne()

			r, g, b := pixelColor.ToRGB8()
			fb.Color[pixelIdx] = PackRGB(r, g, b)
		}
	}
}
