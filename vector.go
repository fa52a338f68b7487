package main

import "github.com/chewxy/math32"

const epsilon = 1e-6

// AreEqual reports whether two float32 values are within an absolute
// tolerance of each other.
func AreEqual(a, b float32) bool {
	return math32.Abs(a-b) < epsilon
}

func clampf32(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func lerpf32(a, b, t float32) float32 {
	return a + (b-a)*t
}

func remapf32(v, min, max float32) float32 {
	return clampf32((v-min)/(max-min), 0, 1)
}

// Vector2 is a 2-component float32 tuple.
type Vector2 struct {
	X, Y float32
}

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Scale(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }

func (v Vector2) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic("Vector2.At: index out of range")
	}
}

func (v Vector2) Equals(o Vector2) bool {
	return AreEqual(v.X, o.X) && AreEqual(v.Y, o.Y)
}

// Cross2 returns the 2D scalar cross product (the edge function building
// block used by the rasterizer).
func Cross2(a, b Vector2) float32 {
	return a.X*b.Y - a.Y*b.X
}

// Vector3 is a 3-component float32 tuple.
type Vector3 struct {
	X, Y, Z float32
}

var (
	UnitX3 = Vector3{1, 0, 0}
	UnitY3 = Vector3{0, 1, 0}
	UnitZ3 = Vector3{0, 0, 1}
	Zero3  = Vector3{0, 0, 0}
)

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Scale(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Negate() Vector3       { return Vector3{-v.X, -v.Y, -v.Z} }

func (v Vector3) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("Vector3.At: index out of range")
	}
}

func (v Vector3) Equals(o Vector3) bool {
	return AreEqual(v.X, o.X) && AreEqual(v.Y, o.Y) && AreEqual(v.Z, o.Z)
}

func DotV3(a, b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func CrossV3(a, b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (v Vector3) SqrMagnitude() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3) Magnitude() float32 {
	return math32.Sqrt(v.SqrMagnitude())
}

// Normalize scales v in place to unit length and returns the
// pre-normalization magnitude. The zero vector is left unchanged.
func (v *Vector3) Normalize() float32 {
	m := v.Magnitude()
	if m == 0 {
		return 0
	}
	inv := 1 / m
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
	return m
}

// Normalized returns a unit-length copy of v; the zero vector maps to itself.
func (v Vector3) Normalized() Vector3 {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	inv := 1 / m
	return Vector3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Reflect mirrors incident direction i about normal n: i - 2*dot(i,n)*n.
func Reflect(i, n Vector3) Vector3 {
	return i.Sub(n.Scale(2 * DotV3(i, n)))
}

func (v Vector3) ToVector4(w float32) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}

// Vector4 is a 4-component float32 tuple, used for clip-space positions and
// matrix rows.
type Vector4 struct {
	X, Y, Z, W float32
}

func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vector4) Scale(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vector4) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic("Vector4.At: index out of range")
	}
}

func DotV4(a, b Vector4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func (v Vector4) XY() Vector2   { return Vector2{v.X, v.Y} }
func (v Vector4) XYZ() Vector3  { return Vector3{v.X, v.Y, v.Z} }

func (v Vector4) Magnitude() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

func (v Vector4) Normalized() Vector4 {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return v.Scale(1 / m)
}
