package main

// TransformVertices runs the full vertex pipeline for mesh: model -> world
// -> view -> projection -> perspective divide -> viewport. WVP is built
// once outside the loop (the reference rebuilds it per vertex; this port
// hoists the invariant computation out without changing the result).
func TransformVertices(mesh *Mesh, viewMatrix, projectionMatrix Matrix, width, height int) {
	mesh.ensureVerticesOut()

	wv := mesh.WorldMatrix.Multiply(viewMatrix)
	wvp := wv.Multiply(projectionMatrix)

	for i, vert := range mesh.Vertices {
		// w is seeded with position.z, not 1 — load-bearing for the
		// downstream w/z semantics the reference relies on.
		clip := wvp.TransformPoint4(vert.Position.ToVector4(vert.Position.Z))

		out := VertexOut{
			Color: vert.Color,
			UV:    vert.UV,
			// Tangent is transformed as a point (TransformPoint, so the
			// world translation is added), matching the reference's own
			// quirk rather than silently "fixing" it into TransformVector
			// semantics.
			Tangent: mesh.WorldMatrix.TransformPoint(vert.Tangent),
		}

		out.Normal = mesh.WorldMatrix.TransformVector(vert.Normal).Normalized()
		out.ViewDirection = wvp.TransformPoint4(vert.Position.ToVector4(1)).XYZ().Normalized()

		invW := float32(1) / clip.W
		ndc := Vector4{
			X: clip.X * invW,
			Y: clip.Y * invW,
			Z: clip.Z * invW,
			W: clip.W,
		}

		out.Position = Vector4{
			X: (ndc.X + 1) / 2 * float32(width),
			Y: (1 - ndc.Y) / 2 * float32(height),
			Z: ndc.Z,
			W: clip.W,
		}

		mesh.VerticesOut[i] = out
	}
}
