package main

import "github.com/chewxy/math32"

// Matrix is a row-major 4x4 matrix: data[0..3] are its rows. Transforms are
// applied to row vectors on the left: v' = v * M. Composing A.Multiply(B)
// means "apply A, then B" — matching the reference rasterizer's convention.
type Matrix struct {
	data [4]Vector4
}

func IdentityMatrix() Matrix {
	return Matrix{data: [4]Vector4{
		{X: 1, Y: 0, Z: 0, W: 0},
		{X: 0, Y: 1, Z: 0, W: 0},
		{X: 0, Y: 0, Z: 1, W: 0},
		{X: 0, Y: 0, Z: 0, W: 1},
	}}
}

// Row returns row r (0..3) of the matrix.
func (m Matrix) Row(r int) Vector4 {
	if r < 0 || r > 3 {
		panic("Matrix.Row: index out of range")
	}
	return m.data[r]
}

// At returns element (r, c) of the matrix.
func (m Matrix) At(r, c int) float32 {
	if r < 0 || r > 3 {
		panic("Matrix.At: row index out of range")
	}
	return m.data[r].At(c)
}

func columnOf(m Matrix, c int) Vector4 {
	return Vector4{X: m.data[0].At(c), Y: m.data[1].At(c), Z: m.data[2].At(c), W: m.data[3].At(c)}
}

// Multiply composes this matrix with other: apply m first, then other.
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result.data[r] = setComponent(result.data[r], c, DotV4(m.data[r], columnOf(other, c)))
		}
	}
	return result
}

func setComponent(v Vector4, i int, value float32) Vector4 {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	case 3:
		v.W = value
	default:
		panic("setComponent: index out of range")
	}
	return v
}

// TransformVector applies only the rotation/scale part of m (the
// translation row is ignored).
func (m Matrix) TransformVector(v Vector3) Vector3 {
	return Vector3{
		X: m.data[0].X*v.X + m.data[1].X*v.Y + m.data[2].X*v.Z,
		Y: m.data[0].Y*v.X + m.data[1].Y*v.Y + m.data[2].Y*v.Z,
		Z: m.data[0].Z*v.X + m.data[1].Z*v.Y + m.data[2].Z*v.Z,
	}
}

// TransformPoint applies the full affine transform, including translation.
func (m Matrix) TransformPoint(v Vector3) Vector3 {
	return Vector3{
		X: m.data[0].X*v.X + m.data[1].X*v.Y + m.data[2].X*v.Z + m.data[3].X,
		Y: m.data[0].Y*v.X + m.data[1].Y*v.Y + m.data[2].Y*v.Z + m.data[3].Y,
		Z: m.data[0].Z*v.X + m.data[1].Z*v.Y + m.data[2].Z*v.Z + m.data[3].Z,
	}
}

// TransformPoint4 applies the full projective transform to a Vector4,
// including its w component.
func (m Matrix) TransformPoint4(v Vector4) Vector4 {
	return Vector4{
		X: m.data[0].X*v.X + m.data[1].X*v.Y + m.data[2].X*v.Z + m.data[3].X*v.W,
		Y: m.data[0].Y*v.X + m.data[1].Y*v.Y + m.data[2].Y*v.Z + m.data[3].Y*v.W,
		Z: m.data[0].Z*v.X + m.data[1].Z*v.Y + m.data[2].Z*v.Z + m.data[3].Z*v.W,
		W: m.data[0].W*v.X + m.data[1].W*v.Y + m.data[2].W*v.Z + m.data[3].W*v.W,
	}
}

// Inverse computes the matrix inverse via the adjugate, optimized the way
// the reference library does it (block decomposition into 3x3 cofactors).
// It panics if the matrix is singular — a non-invertible matrix reaching
// this call is a programmer error, not a recoverable condition.
func (m Matrix) Inverse() Matrix {
	a := Vector3{X: m.data[0].X, Y: m.data[0].Y, Z: m.data[0].Z}
	b := Vector3{X: m.data[1].X, Y: m.data[1].Y, Z: m.data[1].Z}
	c := Vector3{X: m.data[2].X, Y: m.data[2].Y, Z: m.data[2].Z}
	d := Vector3{X: m.data[3].X, Y: m.data[3].Y, Z: m.data[3].Z}

	x := m.data[0].W
	y := m.data[1].W
	z := m.data[2].W
	w := m.data[3].W

	s := CrossV3(a, b)
	t := CrossV3(c, d)
	u := a.Scale(y).Sub(b.Scale(x))
	v := c.Scale(w).Sub(d.Scale(z))

	det := DotV3(s, v) + DotV3(t, u)
	if AreEqual(det, 0) {
		panic("Matrix.Inverse: determinant is 0, matrix is not invertible")
	}

	invDet := 1 / det
	s = s.Scale(invDet)
	t = t.Scale(invDet)
	u = u.Scale(invDet)
	v = v.Scale(invDet)

	r0 := CrossV3(b, v).Add(t.Scale(y))
	r1 := CrossV3(v, a).Sub(t.Scale(x))
	r2 := CrossV3(d, u).Add(s.Scale(w))
	r3 := CrossV3(u, c).Sub(s.Scale(z))

	return Matrix{data: [4]Vector4{
		{X: r0.X, Y: r1.X, Z: r2.X, W: r3.X},
		{X: r0.Y, Y: r1.Y, Z: r2.Y, W: r3.Y},
		{X: r0.Z, Y: r1.Z, Z: r2.Z, W: r3.Z},
		{X: -DotV3(b, t), Y: DotV3(a, t), Z: -DotV3(d, s), W: DotV3(c, s)},
	}}
}

func CreateTranslation(t Vector3) Matrix {
	return Matrix{data: [4]Vector4{
		UnitX3.ToVector4(0),
		UnitY3.ToVector4(0),
		UnitZ3.ToVector4(0),
		t.ToVector4(1),
	}}
}

func CreateRotationX(pitch float32) Matrix {
	cp := math32.Cos(pitch)
	sp := math32.Sin(pitch)
	return Matrix{data: [4]Vector4{
		{X: 1, Y: 0, Z: 0, W: 0},
		{X: 0, Y: cp, Z: sp, W: 0},
		{X: 0, Y: -sp, Z: cp, W: 0},
		{X: 0, Y: 0, Z: 0, W: 1},
	}}
}

func CreateRotationY(yaw float32) Matrix {
	cy := math32.Cos(yaw)
	sy := math32.Sin(yaw)
	return Matrix{data: [4]Vector4{
		{X: cy, Y: 0, Z: -sy, W: 0},
		{X: 0, Y: 1, Z: 0, W: 0},
		{X: sy, Y: 0, Z: cy, W: 0},
		{X: 0, Y: 0, Z: 0, W: 1},
	}}
}

func CreateRotationZ(roll float32) Matrix {
	cr := math32.Cos(roll)
	sr := math32.Sin(roll)
	return Matrix{data: [4]Vector4{
		{X: cr, Y: sr, Z: 0, W: 0},
		{X: -sr, Y: cr, Z: 0, W: 0},
		{X: 0, Y: 0, Z: 1, W: 0},
		{X: 0, Y: 0, Z: 0, W: 1},
	}}
}

// CreateRotation builds a combined pitch/yaw/roll rotation (radians),
// applied in X, then Y, then Z order.
func CreateRotation(pitch, yaw, roll float32) Matrix {
	return CreateRotationX(pitch).Multiply(CreateRotationY(yaw)).Multiply(CreateRotationZ(roll))
}

// CreatePerspectiveFovLH builds a left-handed perspective projection with
// depth mapped to [0,1]. fovValue is tan(fovAngle/2) in radians, not the
// raw angle.
func CreatePerspectiveFovLH(fovValue, aspectRatio, near, far float32) Matrix {
	divFOV := 1 / fovValue
	divAspectFOV := divFOV / aspectRatio
	a := far / (far - near)
	b := -(far * near) / (far - near)

	return Matrix{data: [4]Vector4{
		{X: divAspectFOV, Y: 0, Z: 0, W: 0},
		{X: 0, Y: divFOV, Z: 0, W: 0},
		{X: 0, Y: 0, Z: a, W: 1},
		{X: 0, Y: 0, Z: b, W: 0},
	}}
}
